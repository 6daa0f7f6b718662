/* emoji.go
 * Custom emoji decoration for character names in replies
 * Authors: Zachary Bower
 */

package roster

var characterEmojis = map[string]string{
	"Slasher": "<:firejason:1468043640139022632>",
}

// FormatCharacter appends a character's custom emoji when one exists
func FormatCharacter(name string) string {
	if emoji, ok := characterEmojis[name]; ok {
		return name + " " + emoji
	}
	return name
}
