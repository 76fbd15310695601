package sqlin_test

import (
	"fmt"

	sqlin "gopkg.in/src-d/go-sqlin.v0"
	"gopkg.in/src-d/go-sqlin.v0/sql"
	"gopkg.in/src-d/go-sqlin.v0/sql/expression/incode"
)

func Example() {
	e := sqlin.NewDefault()
	ctx := sql.NewEmptyContext()

	schema := sql.Schema{
		{Name: "name", Type: sql.Text, Source: "mytable"},
		{Name: "age", Type: sql.Int32, Nullable: true, Source: "mytable"},
	}

	rows := []sql.Row{
		sql.NewRow("John Doe", int32(30)),
		sql.NewRow("Jane Doe", nil),
		sql.NewRow("Evil Bob", int32(41)),
	}

	expr, err := e.Compile(ctx, schema, "age IN (30, 41, 52)")
	checkIfError(err)
	fmt.Println(expr.(*incode.SwitchIn).Routine())

	matched, err := e.Filter(ctx, schema, "age IN (30, 41, 52)", rows)
	checkIfError(err)

	for _, row := range matched {
		fmt.Println(row[0])
	}

	// Output: DIRECT_SWITCH(INT) size=3 constants=[dense, keys=3, range=[30, 52]] residuals=0 null=false
	// John Doe
	// Evil Bob
}

func checkIfError(err error) {
	if err != nil {
		panic(err)
	}
}
