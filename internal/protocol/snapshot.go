package protocol

const ProtocolVersion = "spider-field/1"

type PointLite struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

type PolygonLite struct {
	Vertices []PointLite `json:"vertices"`
	Area     int64       `json:"area"`
}

type SpiderLite struct {
	Position  PointLite   `json:"position"`
	Direction string      `json:"direction"`
	Tracing   bool        `json:"tracing"`
	Trail     []PointLite `json:"trail,omitempty"`
}

type SnakeLite struct {
	Position PointLite `json:"position"`
}

type Snapshot struct {
	Tick            uint64        `json:"tick"`
	Status          string        `json:"status"`
	FieldWidth      int32         `json:"fieldWidth"`
	FieldHeight     int32         `json:"fieldHeight"`
	Free            PolygonLite   `json:"free"`
	Claimed         []PolygonLite `json:"claimed"`
	ClaimedPercent  float64       `json:"claimedPercent"`
	ClaimTarget     float64       `json:"claimTarget"`
	Spider          SpiderLite    `json:"spider"`
	Snake           SnakeLite     `json:"snake"`
	ProtocolVersion string        `json:"protocolVersion"`
}
