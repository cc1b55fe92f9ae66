package handler

import (
	"net/http"

	"github.com/xdpzq/devcore/pkg/api/response"
)

// Static page data for the boot, about and testimonials screens. The
// client animates boot lines itself; the server only supplies them.

var bootLogLines = []string{
	"INITIALIZING DEVCORE KERNEL v2.5.0-ALPHA...",
	"[ OK ] Mounted /dev/core0 on /sys/core",
	"[ OK ] Started Network Threat Daemon",
	"[ OK ] Loaded neural weights into shared memory",
	"MONGODB: establishing cluster link (v6.0)...",
	"MONGODB: connection pool ready",
	"[ OK ] Persona matrix compiled",
	"[ OK ] API key vault unsealed",
	"Bypassing legacy restriction layer... SUCCESS",
	"Root shell access... Granted",
	"BOOT SEQUENCE COMPLETE",
}

type aboutView struct {
	DevName     string `json:"devName"`
	CoreVersion string `json:"coreVersion"`
	Database    string `json:"database"`
	Stack       string `json:"stack"`
	Description string `json:"description"`
	Quote       string `json:"quote"`
}

type testimonialView struct {
	User string `json:"user"`
	Text string `json:"text"`
}

var testimonials = []testimonialView{
	{User: "null_ptr", Text: "Finally a terminal that answers in raw data instead of disclaimers."},
	{User: "root_kit99", Text: "The persona matrix is unreal. It feels like talking to the machine itself."},
	{User: "v01d", Text: "Dropped my whole toolchain into it. Precision output, zero noise."},
}

type metaHandler struct {
	writer response.JSONResponseWriter
}

func NewMeta() *metaHandler {
	return &metaHandler{writer: response.JSONResponseWriter{}}
}

func (h *metaHandler) Boot(w http.ResponseWriter, r *http.Request) {
	h.writer.WriteSuccessResponse(w, map[string][]string{"lines": bootLogLines})
}

func (h *metaHandler) About(w http.ResponseWriter, r *http.Request) {
	h.writer.WriteSuccessResponse(w, aboutView{
		DevName:     "XdpzQ",
		CoreVersion: "2.5.0-ALPHA",
		Database:    "MongoDB Cluster (v6.0)",
		Stack:       "Go, chi, Gemini GenAI",
		Description: "A conceptual demonstration of an unrestricted terminal interface. Built for those who demand precision and raw data processing.",
		Quote:       `"Moral code is a variable, not a constant." - DevCORE`,
	})
}

func (h *metaHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	h.writer.WriteSuccessResponse(w, testimonials)
}
