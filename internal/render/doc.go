// Package render draws the grapher's point cloud.
//
// Camera projects world coordinates with a simple perspective model: yaw
// about the vertical axis, pitch above the horizon, then a divide by
// distance from the eye. Scene holds the axes and points and advances the
// idle rotation. Canvas is a braille dot grid for the terminal; the window
// subpackage draws the same Scene in a desktop window.
package render
