// Package cv is the optional OpenCV backend, built with -tags gocv. It
// decodes files with OpenCV and computes raw moments with cv::moments.
// Without the tag every entry point reports ErrUnavailable and callers fall
// back to the pure Go paths.
package cv

import "errors"

// ErrUnavailable is returned when the binary was built without OpenCV.
var ErrUnavailable = errors.New("opencv backend not built in (use -tags gocv)")

// ErrDecode is returned when OpenCV cannot read a file.
var ErrDecode = errors.New("opencv could not read image")
