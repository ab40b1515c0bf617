package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// cellWidth is how many characters of a phrase fit in a rendered tile
const cellWidth = 14

// Output handles formatting output based on the configured format
type Output struct {
	format  string
	noColor bool
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format, noColor: cfg != nil && cfg.NoColor}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SessionState:
		o.printSessionState(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SessionState response type (matches API)
type SessionState struct {
	ID           string     `json:"id"`
	Phase        string     `json:"phase"`
	Phrases      [][]string `json:"phrases"`
	Marks        [][]bool   `json:"marks"`
	WinningLines []Line     `json:"winning_lines"`
	FreeCell     Cell       `json:"free_cell"`
}

// Line response type
type Line struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
}

// Cell response type (a grid coordinate)
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSessionState(s SessionState) {
	fmt.Printf("Session: %s\n", s.ID)
	fmt.Printf("Phase: %s\n", o.phaseLabel(s.Phase))

	if len(s.WinningLines) > 0 {
		names := make([]string, len(s.WinningLines))
		for i, l := range s.WinningLines {
			names[i] = lineName(l)
		}
		fmt.Printf("Winning lines: %s\n", strings.Join(names, ", "))
	}

	fmt.Println()
	o.printGrid(s)

	if s.Phase == "celebrating" {
		banner := "BINGO! Run 'bbingo dismiss' to keep playing."
		if o.noColor {
			fmt.Println(banner)
		} else {
			color.New(color.FgHiYellow, color.Bold).Println(banner)
		}
	}
}

func (o *Output) phaseLabel(phase string) string {
	if o.noColor {
		return phase
	}
	switch phase {
	case "celebrating":
		return color.HiYellowString(phase)
	case "acknowledged":
		return color.HiGreenString(phase)
	default:
		return phase
	}
}

// lineName formats a winning line for humans
func lineName(l Line) string {
	switch l.Kind {
	case "row":
		return fmt.Sprintf("row %d", l.Index)
	case "col":
		return fmt.Sprintf("column %d", l.Index)
	case "diag":
		if l.Index == 0 {
			return "diagonal \\"
		}
		return "diagonal /"
	default:
		return fmt.Sprintf("%s %d", l.Kind, l.Index)
	}
}

func (o *Output) printGrid(s SessionState) {
	size := len(s.Phrases)
	if size == 0 {
		return
	}

	winning := winningPositions(s.WinningLines, size)

	border := "+" + strings.Repeat(strings.Repeat("-", cellWidth+2)+"+", size)

	fmt.Println(border)
	for row := 0; row < size; row++ {
		fmt.Print("|")
		for col := 0; col < size; col++ {
			text := fitCell(s.Phrases[row][col])
			fmt.Printf(" %s |", o.colorCell(text, s, winning, row, col))
		}
		fmt.Println()
		fmt.Println(border)
	}
}

func (o *Output) colorCell(text string, s SessionState, winning map[[2]int]bool, row, col int) string {
	if o.noColor {
		if s.Marks[row][col] {
			return strings.ToUpper(text)
		}
		return text
	}

	switch {
	case winning[[2]int{row, col}]:
		return color.New(color.FgHiYellow, color.Bold).Sprint(text)
	case row == s.FreeCell.Row && col == s.FreeCell.Col:
		return color.New(color.FgHiCyan).Sprint(text)
	case s.Marks[row][col]:
		return color.New(color.FgHiGreen).Sprint(text)
	default:
		return text
	}
}

// winningPositions expands winning lines into the set of covered cells
func winningPositions(lines []Line, size int) map[[2]int]bool {
	positions := make(map[[2]int]bool)
	for _, l := range lines {
		for i := 0; i < size; i++ {
			switch l.Kind {
			case "row":
				positions[[2]int{l.Index, i}] = true
			case "col":
				positions[[2]int{i, l.Index}] = true
			case "diag":
				if l.Index == 0 {
					positions[[2]int{i, i}] = true
				} else {
					positions[[2]int{i, size - 1 - i}] = true
				}
			}
		}
	}
	return positions
}

// fitCell pads or truncates a phrase to the fixed tile width
func fitCell(phrase string) string {
	if len(phrase) > cellWidth {
		return phrase[:cellWidth-2] + ".."
	}
	return phrase + strings.Repeat(" ", cellWidth-len(phrase))
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
