package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocumentInitializes(t *testing.T) {
	doc := NewDocument(32)

	assert.Equal(t, 32, doc.Width())
	assert.Equal(t, []byte{ESC, '@'}, doc.Bytes())
}

func TestNewDocumentDefaultsWidth(t *testing.T) {
	doc := NewDocument(0)

	assert.Equal(t, 32, doc.Width())
}

func TestKeyValuePadsToWidth(t *testing.T) {
	doc := NewDocument(32)
	doc.KeyValue("Subtotal:", "1500.00")

	line := lastLine(t, doc)
	assert.Len(t, line, 32)
	assert.True(t, strings.HasPrefix(line, "Subtotal:"))
	assert.True(t, strings.HasSuffix(line, "1500.00"))
}

func TestKeyValueKeepsOneSpaceWhenTooLong(t *testing.T) {
	doc := NewDocument(32)
	doc.KeyValue("A very long key that overflows the line:", "9999999.99")

	line := lastLine(t, doc)
	assert.Contains(t, line, ": 9999999.99")
}

func TestItemLine(t *testing.T) {
	doc := NewDocument(32)
	doc.ItemLine(3, "Rice 5kg", "1500.00")

	line := lastLine(t, doc)
	assert.Len(t, line, 32)
	assert.True(t, strings.HasPrefix(line, "3x Rice 5kg"))
	assert.True(t, strings.HasSuffix(line, "1500.00"))
}

func TestSeparator(t *testing.T) {
	doc := NewDocument(32)
	doc.Separator('-')

	assert.Equal(t, strings.Repeat("-", 32), lastLine(t, doc))
}

func TestCutAppendsCutCommand(t *testing.T) {
	doc := NewDocument(32)
	doc.Text("done").Cut()

	data := doc.Bytes()
	assert.True(t, bytes.HasSuffix(data, []byte{GS, 'V', 0x00}))
}

func TestStyleCommands(t *testing.T) {
	doc := NewDocument(32)
	doc.SetAlign(AlignCenter).SetBold(true).SetFontSize(FontDouble)

	data := doc.Bytes()
	assert.True(t, bytes.Contains(data, []byte{ESC, 'a', AlignCenter}))
	assert.True(t, bytes.Contains(data, []byte{ESC, 'E', 1}))
	assert.True(t, bytes.Contains(data, []byte{GS, '!', FontDouble}))
}

// lastLine returns the last LF-terminated text line of the document.
func lastLine(t *testing.T, doc *Document) string {
	t.Helper()
	parts := bytes.Split(doc.Bytes(), []byte{LF})
	assert.GreaterOrEqual(t, len(parts), 2)
	line := parts[len(parts)-2]
	// Drop the initialize sequence NewDocument writes before any text.
	line = bytes.TrimPrefix(line, []byte{ESC, '@'})
	return string(line)
}
