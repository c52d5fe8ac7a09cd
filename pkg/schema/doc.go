// Package schema provides the schema language companion to package config:
// a constraint tree mirroring the element tree's group/list/atom shape, a
// structural validator and the loading machinery for schema files.
//
// A schema file declares, per setting, a type, an optional required flag and
// free-form attributes such as "default" or "min":
//
//	server required (group) {
//	    host required (string);
//	    port default = 8080 (int);
//	    ratios (array) { (float) };
//	    listeners min = 1 (list) {
//	        (group) { port required (int); }
//	    };
//	}
//
// # Validation
//
// [Schema.Validate] walks the schema tree against an element tree and
// returns a single [Result]: either valid, or the URI of the schema node
// where the first mismatch was found plus a message. Strict mode
// additionally rejects configuration keys that the schema does not declare.
//
//	s, err := schema.Load("app.schema")
//	f, err := config.Load("app.cfg")
//	if r := s.Validate(f, true); !r.Valid {
//	    log.Fatalf("validation failed at %s: %s", r.URI, r.Message)
//	}
//
// Data problems (wrong type, missing required field, short list) are always
// reported through the Result, never as errors. Defects in the schema file
// itself, such as a mistyped attribute, surface through the fatal channel
// ([SchemaError]).
//
// # Required propagation
//
// Schema trees are built bottom-up, so a node's name, parent link and
// effective required flag are assigned when the parent attaches it. Marking
// any descendant required also marks every enclosing group required. As a
// consequence a group that an author declared optional but that contains a
// required member is itself treated as required: its complete absence is a
// validation failure. This conflates "the group must exist" with "if the
// group exists, the member must exist" and is kept deliberately for
// compatibility with existing schemas.
//
// # List schemas
//
// A list schema carries exactly one element schema; every element of a
// matching configuration list must satisfy it. Heterogeneous lists are
// therefore not describable — a known limitation of the schema language.
package schema
