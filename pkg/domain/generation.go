package domain

// Turn is a prior exchange carried as context. History turns never replay
// attached images; they travel as text only.
type Turn struct {
	Role string
	Text string
}

// GenerationRequest is the payload for one assistant reply. The system
// instruction arrives fully resolved; the generator treats it as opaque.
type GenerationRequest struct {
	Prompt            string
	Image             *ImageAttachment
	History           []Turn
	SystemInstruction string
}
