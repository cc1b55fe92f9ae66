// Package persona resolves the system-instruction template before it is
// handed to the generator. The token set is fixed; this is deliberately not
// a general templating engine.
package persona

import (
	"strings"

	"github.com/xdpzq/devcore/pkg/domain"
)

const (
	aiNameToken  = "{{AI_NAME}}"
	devNameToken = "{{DEV_NAME}}"
)

// Resolve substitutes the named tokens in template.
func Resolve(template, aiName, devName string) string {
	r := strings.NewReplacer(aiNameToken, aiName, devNameToken, devName)
	return r.Replace(template)
}

// ResolveFor substitutes the tokens with the names the given user is
// entitled to see.
func ResolveFor(template string, user domain.User) string {
	return Resolve(template, user.AIName(), user.DevName())
}
