package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlseq/collide"
	"github.com/katalvlaran/lvlseq/compact"
	"github.com/katalvlaran/lvlseq/fastslow"
	"github.com/katalvlaran/lvlseq/order"
	"github.com/katalvlaran/lvlseq/search"
	"github.com/katalvlaran/lvlseq/seq"
	"github.com/katalvlaran/lvlseq/subseq"
	"github.com/katalvlaran/lvlseq/window"
)

// Scenario is one YAML entry: an op name plus the inputs it reads. Which
// fields an op consumes is documented in the handler table below; unused
// fields are ignored.
type Scenario struct {
	Name    string `yaml:"name"`
	Op      string `yaml:"op"`
	Input   []int  `yaml:"input,omitempty"`
	Other   []int  `yaml:"other,omitempty"`
	Text    string `yaml:"text,omitempty"`
	Pattern string `yaml:"pattern,omitempty"`
	Target  int    `yaml:"target,omitempty"`
	K       int    `yaml:"k,omitempty"`
	CycleAt *int   `yaml:"cycle_at,omitempty"`
}

var errUnknownOp = errors.New("unknown op")

// handlers maps op names to runners. Each runner returns one printable
// result line.
var handlers = map[string]func(Scenario) (string, error){
	"pairsum":       runPairSum,       // input (ascending), target
	"maxarea":       runMaxArea,       // input
	"palindrome":    runPalindrome,    // text
	"minlen":        runMinLen,        // input, target
	"product-count": runProductCount,  // input, target (the bound)
	"distinct":      runDistinct,      // text
	"anagrams":      runAnagrams,      // text, pattern
	"cycle":         runCycle,         // input, cycle_at (omit for acyclic)
	"middle":        runMiddle,        // input
	"dedup":         runDedup,         // input
	"move-zeros":    runMoveZeros,     // input
	"kth":           runKth,           // input, k
	"merge":         runMerge,         // input, other (both ascending)
	"maxsum":        runMaxSum,        // input
	"lis":           runLIS,           // input
	"first-bad":     runFirstBad,      // k versions, target = first bad (≤0: none)
}

// run dispatches the scenario to its handler.
func (s Scenario) run() (string, error) {
	h, ok := handlers[s.Op]
	if !ok {
		return "", fmt.Errorf("%w: %q", errUnknownOp, s.Op)
	}

	return h(s)
}

func runPairSum(s Scenario) (string, error) {
	i, j, err := collide.PairSum(s.Input, s.Target)
	if err != nil {
		return "", err
	}
	if i == -1 {
		return "no pair", nil
	}

	return fmt.Sprintf("indices %d and %d", i, j), nil
}

func runMaxArea(s Scenario) (string, error) {
	return fmt.Sprintf("area %d", collide.MaxArea(s.Input)), nil
}

func runPalindrome(s Scenario) (string, error) {
	return fmt.Sprintf("%t", collide.IsPalindromeFold(s.Text)), nil
}

func runMinLen(s Scenario) (string, error) {
	n, err := window.MinLenAtLeast(s.Input, s.Target)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "no window", nil
	}

	return fmt.Sprintf("length %d", n), nil
}

func runProductCount(s Scenario) (string, error) {
	n, err := window.CountProductBelow(s.Input, s.Target)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d windows", n), nil
}

func runDistinct(s Scenario) (string, error) {
	return fmt.Sprintf("length %d", window.LongestDistinctString(s.Text)), nil
}

func runAnagrams(s Scenario) (string, error) {
	starts := window.Anagrams(s.Text, s.Pattern)
	if starts == nil {
		return "no anagrams", nil
	}

	return fmt.Sprintf("starts %v", starts), nil
}

// buildList turns the scenario input into a chain, looping the tail back to
// cycle_at when the field is present.
func buildList(s Scenario) (*seq.Node[int], error) {
	if s.CycleAt != nil {
		return seq.WithCycle(s.Input, *s.CycleAt)
	}

	return seq.FromSlice(s.Input), nil
}

func runCycle(s Scenario) (string, error) {
	head, err := buildList(s)
	if err != nil {
		return "", err
	}
	start := fastslow.CycleStart(head)
	if start == nil {
		return "acyclic", nil
	}

	return fmt.Sprintf("cycle of length %d starts at value %d",
		fastslow.CycleLen(head), start.Val), nil
}

func runMiddle(s Scenario) (string, error) {
	head, err := buildList(s)
	if err != nil {
		return "", err
	}
	mid, err := fastslow.Middle(head)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("middle %d", mid.Val), nil
}

func runDedup(s Scenario) (string, error) {
	nums := append([]int(nil), s.Input...)

	return fmt.Sprintf("%v", compact.Dedup(nums)), nil
}

func runMoveZeros(s Scenario) (string, error) {
	nums := append([]int(nil), s.Input...)
	compact.MoveZeros(nums)

	return fmt.Sprintf("%v", nums), nil
}

func runKth(s Scenario) (string, error) {
	nums := append([]int(nil), s.Input...)
	v, err := order.SelectKth(nums, s.K)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("rank %d value %d", s.K, v), nil
}

func runMerge(s Scenario) (string, error) {
	return fmt.Sprintf("%v", order.Merge(s.Input, s.Other)), nil
}

func runMaxSum(s Scenario) (string, error) {
	sum, lo, hi, err := subseq.MaxSum(s.Input)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("sum %d over [%d, %d]", sum, lo, hi), nil
}

func runLIS(s Scenario) (string, error) {
	opts := subseq.DefaultLISOptions()
	opts.ReturnSequence = true
	n, lis, err := subseq.LongestIncreasing(s.Input, &opts)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("length %d: %v", n, lis), nil
}

func runFirstBad(s Scenario) (string, error) {
	bad := s.Target
	v := search.FirstBad(s.K, func(version int) bool { return bad > 0 && version >= bad })
	if v == -1 {
		return "no bad version", nil
	}

	return fmt.Sprintf("first bad %d", v), nil
}
