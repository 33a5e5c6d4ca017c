package entity

// PlacementView is the wire form of one side's design placement.
type PlacementView struct {
	Side        Side   `json:"side"`
	Present     bool   `json:"present"`
	Position    Point  `json:"position"`
	Translation Point  `json:"translation"`
	Size        Size   `json:"size"`
	Phase       string `json:"phase"`
}

type SessionResponse struct {
	ID    string        `json:"id"`
	Front PlacementView `json:"front"`
	Back  PlacementView `json:"back"`
}

type UploadResponse struct {
	SessionID string        `json:"session_id"`
	Placement PlacementView `json:"placement"`
}

// Export holds both proofs of a session, taken together for one order.
type Export struct {
	HasFront bool
	HasBack  bool
	Front    Artifact
	Back     Artifact
}
