// Package analysis holds the image routines Lumen offers: grayscale
// conversion, intensity and channel histograms, gray-level co-occurrence
// texture descriptors and Hu shape moments.
//
// Routines are stateless and never touch the GUI. They take decoded images
// and return plain values; rendering and logging are the caller's concern.
package analysis
