// Package ironsegment implements a reader and writer for the ironsegment
// container format: a bundle of co-registered raster images — color,
// depth, object identifiers, monochrome line art — sharing one width and
// height, accompanied by a textual XML manifest describing their logical
// meanings and associated object metadata.
//
// The format is designed for random-access reading via memory mapping:
// [Open] maps the file and parses the manifest once, then
// individual image payloads are decoded lazily through [Reader.ImageData]
// at caller request.
//
// Basic usage for reading:
//
//	r, err := ironsegment.Open("scene.isb")
//	img, err := r.ImageData(imageID)
//	rgb, err := img.GetRGBFloat(x, y)
//
// Basic usage for writing:
//
//	w, err := ironsegment.Create("scene.isb", manifest)
//	for _, wi := range w.WritableImages() {
//	    copy(w.Payload(wi), pixelBytes)
//	}
//	err = w.Close()
package ironsegment
