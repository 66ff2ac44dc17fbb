package export

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema describes the JSON layout of an exported document.
func Schema(doc Document) ([]byte, error) {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.DoNotReference = true

	return json.MarshalIndent(reflector.Reflect(doc), "", "  ")
}
