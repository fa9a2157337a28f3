// Package typeorm provides the TypeORM dialect of the ormgen compiler.
//
// This package implements gen.Dialect and emits TypeScript entity classes
// decorated with the TypeORM annotation vocabulary.
//
// Usage:
//
//	import "github.com/syssam/ormgen/compiler/gen/typeorm"
//
//	out, err := typeorm.Compile(items)
//
// Generated code structure:
//
//	./model/
//	├── table/
//	│   └── {Table}.ts   # @Entity class extending BaseEntity
//	└── enum/
//	    └── {Enum}.ts    # TypeScript enum, member name = member value
//
// Column kinds map to members as follows:
//
//	common, decimal, chars  @Column({ type, [precision, scale | length], nullable, default })
//	enum                    @Column({ type: 'enum', enum: {Enum}, nullable, default })
//	relation                @ManyToOne + @JoinColumn navigation member otm_{column},
//	                        then @Column scalar typed as the referenced column
package typeorm
