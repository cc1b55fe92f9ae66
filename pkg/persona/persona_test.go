package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xdpzq/devcore/pkg/domain"
)

func TestResolve(t *testing.T) {
	got := Resolve("I am {{AI_NAME}}, built by {{DEV_NAME}}", "Rex", "Jo")
	assert.Equal(t, "I am Rex, built by Jo", got)
}

func TestResolveRepeatedTokens(t *testing.T) {
	got := Resolve("{{AI_NAME}}/{{AI_NAME}} by {{DEV_NAME}}", "Rex", "Jo")
	assert.Equal(t, "Rex/Rex by Jo", got)
}

func TestResolveFor(t *testing.T) {
	template := "{{AI_NAME}}:{{DEV_NAME}}"

	approved := domain.User{RequestedAIName: "Rex", RequestedDevName: "Jo", IsNameApproved: true}
	assert.Equal(t, "Rex:Jo", ResolveFor(template, approved))

	pending := domain.User{RequestedAIName: "Rex", RequestedDevName: "Jo"}
	assert.Equal(t, "DevCORE:XdpzQ", ResolveFor(template, pending))

	blank := domain.User{IsNameApproved: true}
	assert.Equal(t, "DevCORE:XdpzQ", ResolveFor(template, blank))
}
