// Package schema is the runtime of generated query registries.
//
// A query type derived with query_responses gets a registry function
// mapping each query key to the JSON schema of its response:
//
//	func QueryMsgResponseSchemas[T schema.Describable]() schema.Registry {
//	    return schema.Registry{
//	        "owner":   schema.For[string](),
//	        "balance": schema.For[[]macrocosm.Coin](),
//	    }
//	}
//
// Nested query types combine the registries of their subqueries with
// [CombineSubqueries]. Two subqueries answering the same key break the
// registry's integrity and are reported as *IntegrityError.
//
// Registries depend on reflection and are excluded from wasm builds.
package schema
