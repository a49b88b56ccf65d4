package key

import (
	"fmt"
	"strings"
)

// Key identifies a navigation or editing key. Characters use KeyRune with
// Event.Rune; pasted or composed text uses KeyText with Event.Text.
type Key uint16

const (
	KeyNone Key = iota

	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	KeyHome
	KeyEnd
	KeyEnter
	KeyBackspace
	KeyDelete

	KeyRune
	KeyText
)

var keyNames = [...]string{
	KeyNone:      "None",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyRune:      "Rune",
	KeyText:      "Text",
}

// keyAliases are the extra spellings accepted in specifications.
var keyAliases = map[string]Key{
	"return": KeyEnter,
	"cr":     KeyEnter,
	"bs":     KeyBackspace,
	"del":    KeyDelete,
}

// String returns the key name used in specifications.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsNavigationKey returns true if the key only moves the caret.
func (k Key) IsNavigationKey() bool {
	return k >= KeyLeft && k <= KeyEnd
}

// KeyFromName looks up a named key, ignoring case. Rune and Text are
// not nameable; unknown names yield KeyNone.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyAliases[name]; ok {
		return k
	}
	for k := KeyLeft; k < KeyRune; k++ {
		if strings.ToLower(keyNames[k]) == name {
			return k
		}
	}
	return KeyNone
}
