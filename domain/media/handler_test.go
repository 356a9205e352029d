package media

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	now := time.UnixMilli(1756702800000)

	t.Run("keeps the original extension", func(t *testing.T) {
		name := objectName("team photo.PNG", now)
		assert.Regexp(t, regexp.MustCompile(`^1756702800000-[a-z0-9]{6}\.PNG$`), name)
	})

	t.Run("no extension yields no trailing dot", func(t *testing.T) {
		name := objectName("LICENSE", now)
		assert.Regexp(t, regexp.MustCompile(`^1756702800000-[a-z0-9]{6}$`), name)
	})

	t.Run("trailing dot is dropped", func(t *testing.T) {
		name := objectName("upload.", now)
		assert.Regexp(t, regexp.MustCompile(`^1756702800000-[a-z0-9]{6}$`), name)
	})
}
