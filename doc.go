// Package jsonrepair is a tolerant JSON repair engine: given an
// arbitrary byte string intended to be JSON but possibly malformed
// (hand-edited, copy-pasted, JavaScript-flavored, NDJSON, or GeoJSON
// with common typos), it produces a syntactically valid JSON text
// equivalent in intent, an ordered categorized list of the repairs it
// made, and metrics describing that repair activity.
//
// A tiny example:
//
//	result := jsonrepair.Fix(`{name: 'Alice', age: +01}`, jsonrepair.DefaultConfig())
//	fmt.Println(result.Fixed)
//	// {
//	//   "name": "Alice",
//	//   "age": 1
//	// }
//
// Fix runs the full tokenizer -> parser -> reconstructor pipeline and
// never fails; Validate and Parse run in strict mode and report every
// issue as a ValidationError instead of repairing it.
package jsonrepair
