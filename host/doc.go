// Package host runs the windowed wallpaper.
//
// Run builds a gogpu application, feeds pointer motion into a tracker from
// an evdev source, and renders the cursor triangle to the window surface on
// every frame. Rendering is event-driven: an animation token keeps frames
// coming at VSync, and Space toggles it to pause the wallpaper at zero CPU.
package host
