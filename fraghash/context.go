package fraghash

import "golang.org/x/crypto/sha3"

// Context is a resettable cSHAKE256 state bound to one customization
// string.
type Context struct {
	custom string
	h      sha3.ShakeHash
}

// NewContext returns a fresh context customized with custom.
func NewContext(custom string) *Context {
	return &Context{
		custom: custom,
		h:      sha3.NewCShake256(nil, []byte(custom)),
	}
}

// Custom returns the customization string.
func (c *Context) Custom() string {
	return c.custom
}

// Absorb feeds p into the state.
func (c *Context) Absorb(p []byte) {
	// Write on a sponge that has not been read from never fails.
	c.h.Write(p)
}

// Squeeze fills out with output for everything absorbed so far. The
// context keeps absorbing afterwards as if Squeeze had not been called.
func (c *Context) Squeeze(out []byte) {
	c.h.Clone().Read(out)
}

// SqueezeReset fills out like Squeeze, reading the state in place, and
// then resets the context. No copy of the state is made.
func (c *Context) SqueezeReset(out []byte) {
	c.h.Read(out)
	c.h.Reset()
}

// Reset returns the context to its freshly customized state.
func (c *Context) Reset() {
	c.h.Reset()
}
