package typeorm_test

import (
	"fmt"

	"github.com/syssam/ormgen/compiler/gen/typeorm"
	"github.com/syssam/ormgen/compiler/load"
)

func ExampleCompile() {
	items := []load.Item{
		load.NewEnum("Status", "active", "inactive"),
		load.NewTable("User",
			load.NewColumn("id", load.Common("int"), load.PrimaryKey(true), load.AutoIncrement(true)),
			load.NewColumn("status", load.EnumRef("Status")),
		),
	}
	out, err := typeorm.Compile(items)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, f := range out.Files() {
		fmt.Println(f.Name)
	}
	fmt.Println(out.Enum.Files[0].Content)
	// Output:
	// ./model/table/User.ts
	// ./model/enum/Status.ts
	// export enum Status {
	//   'active' = 'active',
	//   'inactive' = 'inactive',
	// };
}
