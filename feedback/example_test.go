package feedback_test

import (
	"fmt"

	"github.com/katalvlaran/lexipath/feedback"
)

// ExampleEvaluate shows the duplicate-letter accounting: SPEED holds two E's
// but ERASE can only cover both from its own two E's, while D and P are absent.
func ExampleEvaluate() {
	p, err := feedback.Evaluate("SPEED", "ERASE")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)
	fmt.Println(p.AllCorrect())
	// Output:
	// Y-YY-
	// false
}

// ExamplePattern_Code packs a pattern into its base-3 integer and back.
func ExamplePattern_Code() {
	p, _ := feedback.Evaluate("CRANE", "CRANE")
	code := p.Code()
	back, _ := feedback.FromCode(code, 5)
	fmt.Println(code, back)
	// Output:
	// 242 GGGGG
}
