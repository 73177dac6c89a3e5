// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/pwbench/pipeline"
)

func ExampleFormatDate() {
	s, ok := pipeline.FormatDate("2023-04-05 10:11:12")
	fmt.Println(s, ok)
	// Output: 05/04/2023 true
}

func ExamplePipeline_Classify() {
	p, _ := pipeline.New()
	var out bytes.Buffer
	in := "id,password,length,date\n1,Ab1!,4,2023-04-05 10:11:12\n"

	res, err := p.Classify(strings.NewReader(in), &out)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Print(out.String())
	fmt.Println(res.Processed, res.Failed)
	// Output:
	// id,password,length,date,class
	// 1,Ab1!,4,2023-04-05 10:11:12,good
	// 1 0
}
