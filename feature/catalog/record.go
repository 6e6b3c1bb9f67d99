package catalog

import (
	"strings"

	"deck-reconciler/core/naming"
)

// ImageURIs holds the image references of one card face in several
// resolutions plus the art crop.
type ImageURIs struct {
	Small      string `json:"small,omitempty"`
	Normal     string `json:"normal,omitempty"`
	Large      string `json:"large,omitempty"`
	PNG        string `json:"png,omitempty"`
	ArtCrop    string `json:"art_crop,omitempty"`
	BorderCrop string `json:"border_crop,omitempty"`
}

// Face is one face of a multi-faced card.
type Face struct {
	Name       string     `json:"name"`
	ManaCost   string     `json:"mana_cost,omitempty"`
	TypeLine   string     `json:"type_line,omitempty"`
	OracleText string     `json:"oracle_text,omitempty"`
	ImageURIs  *ImageURIs `json:"image_uris,omitempty"`
}

// Record is the resolved catalog data for one card. Immutable once fetched.
type Record struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	ManaCost      string     `json:"mana_cost,omitempty"`
	CMC           float64    `json:"cmc"`
	TypeLine      string     `json:"type_line,omitempty"`
	Colors        []string   `json:"colors,omitempty"`
	ColorIdentity []string   `json:"color_identity,omitempty"`
	Faces         []Face     `json:"card_faces,omitempty"`
	ImageURIs     *ImageURIs `json:"image_uris,omitempty"`
	ScryfallURI   string     `json:"scryfall_uri,omitempty"`
	SetName       string     `json:"set_name,omitempty"`
}

// FirstFaceName returns the name of the record's first face: the first
// entry of the face array when present, otherwise the part of the full name
// before the face separator.
func (r *Record) FirstFaceName() string {
	if len(r.Faces) > 0 {
		return r.Faces[0].Name
	}
	prefix, _ := naming.FirstFace(r.Name)
	return prefix
}

// IsLand reports whether the record's front type line is a land type.
func (r *Record) IsLand() bool {
	typeLine := r.TypeLine
	if typeLine == "" && len(r.Faces) > 0 {
		typeLine = r.Faces[0].TypeLine
	}
	return strings.Contains(typeLine, "Land")
}
