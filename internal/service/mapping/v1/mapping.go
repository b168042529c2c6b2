// Package mapping provides functionality for creating short opaque mapping identifiers.
package mapping

import (
	"math/rand"
	"sync"
	"time"

	serviceErrors "github.com/nathdadu26/viralbox-uploader-bot/internal/service/errors"
	"github.com/nathdadu26/viralbox-uploader-bot/internal/service/mapping"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Check interface implementation explicitly
var (
	_ mapping.Generator = (*Generator)(nil)
)

// Generator draws fixed-length identifiers uniformly from the alphanumeric alphabet.
// It does not guarantee uniqueness; collision avoidance is the storage's responsibility.
type Generator struct {
	mu     sync.Mutex
	length int
	rnd    *rand.Rand
}

// InitGenerator initializes a Generator object and sets its attributes.
func InitGenerator(length int) (*Generator, error) {
	if length <= 0 {
		return nil, &serviceErrors.ServiceIncorrectMappingLength{Length: length}
	}
	return &Generator{
		length: length,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Generate returns a new mapping identifier.
func (g *Generator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	b := make([]byte, g.length)
	for i := range b {
		b[i] = alphabet[g.rnd.Intn(len(alphabet))]
	}
	return string(b)
}
