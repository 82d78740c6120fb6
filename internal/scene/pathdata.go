package scene

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePathData parses a subset of SVG path data (absolute M, L, C and
// Z, plus their relative lowercase forms) into sub-paths with generated
// command IDs of the form prefix+ordinal ("c1", "c2", ...).
//
// The subset matches what the editor's own serializer emits; arcs and
// quadratics are converted upstream before they reach the document.
func ParsePathData(d, idPrefix string) ([]*SubPath, error) {
	toks, err := tokenizePathData(d)
	if err != nil {
		return nil, err
	}

	var (
		subs    []*SubPath
		current *SubPath
		cx, cy  float64
		ord     int
	)

	nextID := func() string {
		ord++
		return fmt.Sprintf("%s%d", idPrefix, ord)
	}

	i := 0
	for i < len(toks) {
		op := toks[i]
		i++
		rel := op >= "a" && op <= "z"

		need := func(n int) ([]float64, error) {
			if i+n > len(toks) {
				return nil, fmt.Errorf("path data: %s needs %d numbers", op, n)
			}
			nums := make([]float64, n)
			for j := 0; j < n; j++ {
				v, err := strconv.ParseFloat(toks[i+j], 64)
				if err != nil {
					return nil, fmt.Errorf("path data: bad number %q", toks[i+j])
				}
				nums[j] = v
			}
			i += n
			return nums, nil
		}

		switch strings.ToUpper(op) {
		case "M":
			nums, err := need(2)
			if err != nil {
				return nil, err
			}
			if rel {
				nums[0] += cx
				nums[1] += cy
			}
			cx, cy = nums[0], nums[1]
			current = &SubPath{ID: fmt.Sprintf("%ssp%d", idPrefix, len(subs)+1)}
			current.Commands = append(current.Commands, &Command{
				ID: nextID(), Kind: KindMove, X: cx, Y: cy,
			})
			subs = append(subs, current)

		case "L":
			if current == nil {
				return nil, fmt.Errorf("path data: L before M")
			}
			nums, err := need(2)
			if err != nil {
				return nil, err
			}
			if rel {
				nums[0] += cx
				nums[1] += cy
			}
			cx, cy = nums[0], nums[1]
			current.Commands = append(current.Commands, &Command{
				ID: nextID(), Kind: KindLine, X: cx, Y: cy,
			})

		case "C":
			if current == nil {
				return nil, fmt.Errorf("path data: C before M")
			}
			nums, err := need(6)
			if err != nil {
				return nil, err
			}
			if rel {
				nums[0] += cx
				nums[1] += cy
				nums[2] += cx
				nums[3] += cy
				nums[4] += cx
				nums[5] += cy
			}
			cx, cy = nums[4], nums[5]
			current.Commands = append(current.Commands, &Command{
				ID: nextID(), Kind: KindCubic,
				X1: nums[0], Y1: nums[1],
				X2: nums[2], Y2: nums[3],
				X: cx, Y: cy,
			})

		case "Z":
			if current == nil {
				return nil, fmt.Errorf("path data: Z before M")
			}
			current.Closed = true
			current.Commands = append(current.Commands, &Command{
				ID: nextID(), Kind: KindClose,
			})
			current = nil

		default:
			return nil, fmt.Errorf("path data: unsupported op %q", op)
		}
	}

	return subs, nil
}

// tokenizePathData splits path data into op letters and number strings.
func tokenizePathData(d string) ([]string, error) {
	var toks []string
	var num strings.Builder

	flush := func() {
		if num.Len() > 0 {
			toks = append(toks, num.String())
			num.Reset()
		}
	}

	for _, r := range d {
		switch {
		case (r == 'e' || r == 'E') && num.Len() > 0:
			// Exponent inside a number, not a path op.
			num.WriteRune(r)
		case r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z':
			flush()
			toks = append(toks, string(r))
		case r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		case r == '-':
			// A minus sign starts a new number unless it is the first
			// character of the one being built or follows an exponent.
			s := num.String()
			if num.Len() > 0 && !strings.HasSuffix(s, "e") && !strings.HasSuffix(s, "E") {
				flush()
			}
			num.WriteRune(r)
		case r >= '0' && r <= '9' || r == '.' || r == 'e' || r == 'E' || r == '+':
			num.WriteRune(r)
		default:
			return nil, fmt.Errorf("path data: unexpected character %q", r)
		}
	}
	flush()
	return toks, nil
}
