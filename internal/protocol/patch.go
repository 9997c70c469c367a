package protocol

const (
	PatchSpiderMoved   = "SpiderMoved"
	PatchSnakeMoved    = "SnakeMoved"
	PatchFieldCut      = "FieldCut"
	PatchStatusChanged = "StatusChanged"
	PatchSnapshot      = "Snapshot"
)

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	Tick     uint64 `json:"tick"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type SpiderMoved struct {
	Position  PointLite   `json:"position"`
	Direction string      `json:"direction"`
	Tracing   bool        `json:"tracing"`
	Trail     []PointLite `json:"trail,omitempty"`
}

type SnakeMoved struct {
	Position PointLite `json:"position"`
}

// FieldCut reports a successful cut. Free replaces the previous free
// region and Claimed is appended to the claimed pieces.
type FieldCut struct {
	Free           PolygonLite `json:"free"`
	Claimed        PolygonLite `json:"claimed"`
	ClaimedPercent float64     `json:"claimedPercent"`
}

type StatusChanged struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}
