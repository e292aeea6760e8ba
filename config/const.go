package config

import "strings"

// AppVersion is the version of the application, set at build time.
var AppVersion = "0.1.0"

// AppName is the name of the application.
const AppName = "Lumen"

// AppID is the unique fyne application ID, used to scope stored preferences.
const AppID = "com.dixieflatline76.lumen"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension of the log file.
const LogExt = ".log"
