package colortext

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/bdamokos/pick-distinct-colors/lab"
)

// ErrParseColor is returned for any string that matches no supported form
// or carries a channel outside 0..255.
var ErrParseColor = errors.New("colortext: unparsable color string")

// bracketTriple matches one [r,g,b] triple inside a bracketed array form.
var bracketTriple = regexp.MustCompile(`\[(\d+),\s*(\d+),\s*(\d+)\]`)

// ParseColor parses a single color string in any supported form.
func ParseColor(s string) (lab.RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return lab.RGB{}, ErrParseColor
	}

	// Hex: #RRGGBB, or bare RRGGBB when the whole string is hex digits.
	if strings.HasPrefix(s, "#") || (len(s) == 6 && isHex(s)) {
		return parseHex(s)
	}

	// Functional: rgb(r, g, b), case-insensitive.
	if low := strings.ToLower(s); strings.HasPrefix(low, "rgb(") && strings.HasSuffix(s, ")") {
		return parseTriple(strings.Split(s[4:len(s)-1], ","))
	}

	// Delimiter-separated: commas first, then whitespace.
	if strings.Contains(s, ",") {
		return parseTriple(strings.Split(s, ","))
	}
	if fields := strings.Fields(s); len(fields) == 3 {
		return parseTriple(fields)
	}

	return lab.RGB{}, ErrParseColor
}

// ParseColorList parses a text holding multiple colors: either one
// bracketed array ([[r,g,b], …], JSON or JavaScript style), or one color
// per line in any single-color form. Unparsable lines are skipped — the
// batch never fails as a whole.
func ParseColorList(text string) []lab.RGB {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		if colors := parseBracketed(text); len(colors) > 0 {
			return colors
		}
	}

	var colors []lab.RGB
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := ParseColor(line)
		if err != nil {
			continue // skip the offending line, keep the batch
		}
		colors = append(colors, c)
	}

	return colors
}

// parseBracketed handles the [[r,g,b], …] array form: strict JSON first,
// then a regexp sweep for JavaScript-ish input JSON rejects.
func parseBracketed(text string) []lab.RGB {
	var arr [][]int
	if err := json.Unmarshal([]byte(text), &arr); err == nil {
		colors := make([]lab.RGB, 0, len(arr))
		for _, item := range arr {
			if len(item) != 3 {
				continue
			}
			c, err := channelsToRGB(item[0], item[1], item[2])
			if err != nil {
				continue
			}
			colors = append(colors, c)
		}

		return colors
	}

	var colors []lab.RGB
	for _, m := range bracketTriple.FindAllStringSubmatch(text, -1) {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		c, err := channelsToRGB(r, g, b)
		if err != nil {
			continue
		}
		colors = append(colors, c)
	}

	return colors
}

// parseHex delegates six-digit hex parsing to go-colorful.
func parseHex(s string) (lab.RGB, error) {
	h := s
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	if len(h) != 7 {
		return lab.RGB{}, ErrParseColor
	}

	c, err := colorful.Hex(h)
	if err != nil {
		return lab.RGB{}, ErrParseColor
	}

	// colorful stores channels as v/255 exactly; +0.5 rounds them back.
	return lab.RGB{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
	}, nil
}

// parseTriple converts three decimal channel strings into an RGB value.
func parseTriple(parts []string) (lab.RGB, error) {
	if len(parts) != 3 {
		return lab.RGB{}, ErrParseColor
	}

	var ch [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return lab.RGB{}, ErrParseColor
		}
		ch[i] = v
	}

	return channelsToRGB(ch[0], ch[1], ch[2])
}

// channelsToRGB range-checks three integer channels.
func channelsToRGB(r, g, b int) (lab.RGB, error) {
	for _, v := range [3]int{r, g, b} {
		if v < 0 || v > 255 {
			return lab.RGB{}, ErrParseColor
		}
	}

	return lab.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// isHex reports whether s consists solely of hexadecimal digits.
func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}

	return true
}
