// Package gen provides the dialect-independent core of the ormgen compiler.
//
// The compiler turns a schema model (see package load) into one generated
// source file per table and per enum, in the annotation vocabulary of a
// persistence framework.
//
// # Architecture
//
// The compilation pipeline follows this flow:
//
//	[]load.Item (tables and enums)
//	        ↓
//	   Graph (partitioned by kind, indexed by name, built once)
//	        ↓
//	   Dialect (EntityGenerator per table, EnumGenerator per enum)
//	        ↓
//	   Output (files and name → path maps, per kind)
//
// # Key Types
//
//   - Graph: the model of one compile with name lookups, relation and
//     dependency resolution
//   - Attributes: the resolved attributes of a column
//   - Layout: the placement of generated artifacts
//   - Dialect: the vocabulary of a target framework
//   - Compiler: orchestration and output aggregation
//   - Config: global configuration, built from functional options
//
// # Error Handling
//
// The package uses structured error types:
//
//   - ReferenceError: an enum, table or foreign-key column is missing
//   - TypeError: a type descriptor has no target type
//   - ConfigError: configuration errors
//   - GenerationError: wraps the failure of one item
//
// Every failure aborts the whole compile. Example error handling:
//
//	out, err := compiler.Compile(items)
//	if err != nil {
//	    if gen.IsReferenceError(err) {
//	        // Handle missing references
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	compiler, err := gen.NewCompiler(typeorm.NewDialect(),
//	    gen.WithWorkers(4),
//	    gen.WithHeader("Code generated by ormgen. DO NOT EDIT."),
//	)
//
// # Usage
//
// The recommended way to compile is through the dialect package:
//
//	import "github.com/syssam/ormgen/compiler/gen/typeorm"
//
//	out, err := typeorm.Compile(items)
package gen
