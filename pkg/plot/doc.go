// Package plot rasterizes a chaos-game point cloud onto a Cartesian chart.
//
// A [Plot] owns a fixed-size canvas with a margin on every side. Inside the
// margins, the data domain (a [geom.Rect]) is mapped linearly onto the plot
// area with the y axis pointing up. Rendering fills the background, draws
// the coordinate mesh, then sets exactly one foreground pixel per point.
// There is no anti-aliasing or density shading: later points overwrite
// earlier ones.
//
// The default configuration reproduces the reference image: 640×480, a
// 10 pixel margin, domain [-10000, 10000] on both axes, black points on
// white with a translucent black mesh.
//
//	p, err := plot.New()
//	if err != nil {
//	    return err
//	}
//	if err := p.WriteFile("fractal.png", points); err != nil {
//	    return err
//	}
//
// # Output Formats
//
// The encoder is chosen from the output file extension: .png (default),
// .jpg/.jpeg, .bmp and .tif/.tiff.
package plot
