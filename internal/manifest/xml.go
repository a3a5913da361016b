package manifest

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Namespace is the XML namespace carried on the root <Manifest> element
// (spec section 6).
const Namespace = "urn:com.io7m.ironsegment:manifest:1"

// ErrManifestInvalid wraps any structural or semantic error encountered
// while parsing manifest XML.
type ErrManifestInvalid struct {
	Cause error
}

func (e *ErrManifestInvalid) Error() string {
	return fmt.Sprintf("manifest: invalid manifest: %v", e.Cause)
}

func (e *ErrManifestInvalid) Unwrap() error { return e.Cause }

// xmlManifest is the schema-shaped tree encoding/xml marshals to and from.
type xmlManifest struct {
	XMLName xml.Name    `xml:"Manifest"`
	XMLNS   string      `xml:"xmlns,attr"`
	Images  xmlImages   `xml:"Images"`
	Objects xmlObjects  `xml:"Objects"`
	Meta    xmlMetadata `xml:"Metadata"`
}

type xmlImages struct {
	Width  uint32     `xml:"Width,attr"`
	Height uint32     `xml:"Height,attr"`
	Image  []xmlImage `xml:"Image"`
}

type xmlImage struct {
	ID       uint32 `xml:"ID,attr"`
	Semantic string `xml:"Semantic,attr"`
}

type xmlObjects struct {
	Object []xmlObject `xml:"Object"`
}

type xmlObject struct {
	ID   uint32 `xml:"ID,attr"`
	Text string `xml:",chardata"`
}

type xmlMetadata struct {
	Meta []xmlMeta `xml:"Meta"`
}

type xmlMeta struct {
	Name string `xml:"Name,attr"`
	Text string `xml:",chardata"`
}

// parseRaw decodes manifest XML text into the raw schema-shaped tree,
// without building the map-based Manifest. It exists so tests can assert
// on serialization order, which the map-based Manifest does not preserve.
func parseRaw(text []byte) (xmlManifest, error) {
	var tree xmlManifest
	if err := xml.Unmarshal(text, &tree); err != nil {
		return xmlManifest{}, &ErrManifestInvalid{Cause: err}
	}
	return tree, nil
}

// Parse decodes manifest XML text into a Manifest.
func Parse(text []byte) (Manifest, error) {
	tree, err := parseRaw(text)
	if err != nil {
		return Manifest{}, err
	}

	images := make(map[uint32]Image, len(tree.Images.Image))
	for _, im := range tree.Images.Image {
		images[im.ID] = Image{ID: im.ID, Semantic: im.Semantic}
	}

	objects := make(map[uint32]Object, len(tree.Objects.Object))
	for _, ob := range tree.Objects.Object {
		objects[ob.ID] = Object{ID: ob.ID, Description: ob.Text}
	}

	metadata := make(map[string]string, len(tree.Meta.Meta))
	for _, me := range tree.Meta.Meta {
		metadata[me.Name] = me.Text
	}

	return Manifest{
		Images: Images{
			Width:  tree.Images.Width,
			Height: tree.Images.Height,
			Images: images,
		},
		Objects:  objects,
		Metadata: metadata,
	}, nil
}

// Serialize encodes a Manifest into manifest XML text. Children are
// emitted in ascending numeric ID order for Images and Objects, and
// ascending string order by Name for Meta (spec section 6), since
// encoding/xml does not itself impose an order on map iteration.
func Serialize(m Manifest) ([]byte, error) {
	tree := xmlManifest{
		XMLNS: Namespace,
		Images: xmlImages{
			Width:  m.Images.Width,
			Height: m.Images.Height,
		},
		Objects: xmlObjects{},
		Meta:    xmlMetadata{},
	}

	for _, id := range m.SortedImageIDs() {
		im := m.Images.Images[id]
		tree.Images.Image = append(tree.Images.Image, xmlImage{ID: im.ID, Semantic: im.Semantic})
	}
	for _, id := range sortedObjectIDs(m.Objects) {
		ob := m.Objects[id]
		tree.Objects.Object = append(tree.Objects.Object, xmlObject{ID: ob.ID, Text: ob.Description})
	}
	for _, key := range sortedMetadataKeys(m.Metadata) {
		tree.Meta.Meta = append(tree.Meta.Meta, xmlMeta{Name: key, Text: m.Metadata[key]})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(tree); err != nil {
		return nil, fmt.Errorf("manifest: serializing: %w", err)
	}
	return buf.Bytes(), nil
}
