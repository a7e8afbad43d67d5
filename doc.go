/*

iconinspect takes an image file (it supports jpeg, png, gif, bmp, tiff
and webp encodings) and prints diagnostic information about it: format,
size and channel mode, the pixel values at its corners, edge midpoints
and center, and how many of its pixels look yellow (R>200, G>200, B<100
and not fully transparent), with the first four of them listed.
Without an argument it inspects icon.png in the current directory.

Example:
	iconinspect
	iconinspect assets/logo.webp

If the file cannot be opened or decoded, a single line is printed:
	Error: open icon.png: no such file or directory

*/
package main
