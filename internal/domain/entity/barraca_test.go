package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBarracaID_IsCanonical(t *testing.T) {
	assert.True(t, BarracaID("2f0c8f9e-5d1a-4b8e-a97e-0b5a6f2d9c11").IsCanonical())
	assert.False(t, BarracaID("barraca-legacy-7").IsCanonical())
	assert.False(t, BarracaID("").IsCanonical())
}

func TestContact_HasInstagram(t *testing.T) {
	assert.True(t, Contact{Instagram: "praiaoficial"}.HasInstagram())
	assert.False(t, Contact{Instagram: "   "}.HasInstagram())
	assert.False(t, Contact{}.HasInstagram())
}

func TestSession_Valid(t *testing.T) {
	now := time.Now()

	live := &Session{ExpiresAt: now.Add(time.Hour)}
	expired := &Session{ExpiresAt: now.Add(-time.Second)}

	assert.True(t, live.Valid(now))
	assert.False(t, expired.Valid(now))
	assert.False(t, (*Session)(nil).Valid(now))
}
