// Package config provides the typed, hierarchical configuration model: a
// parser for the configuration language and an element tree with path-based,
// type-coercing lookup.
//
// A configuration file consists of groups, variables, lists and arrays:
//
//	server {
//	    host = "example.com";
//	    port = 8080;
//	    ratios = [0.5, 1.0, 2.0];        // homogeneous array
//	    listeners = (                     // general list, mixed kinds allowed
//	        { port = 9000; },
//	        { port = 9001; }
//	    );
//	}
//
// Line comments ("//...") and block comments ("/*...*/") are discarded.
//
// # Loading and lookup
//
// [Load] parses a file into a [File]; values are then addressed with dotted
// paths carrying optional bracketed indices:
//
//	f, err := config.Load("app.cfg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	host, err := config.Get[string](f, "server.host")
//	port, err := config.Get[int64](f, "server.listeners[0].port")
//
// Lookup failures (missing key, bad index, wrong node kind) are normalized
// to a single [LookupError] naming the full path. [LookupOr] swallows
// lookup failures and returns a default instead; conversion failures
// ([CoercionError]) always propagate.
//
// # Value coercion
//
// Atoms hold one of bool, int64, float64 or string. Arithmetic kinds convert
// to each other when the value fits the target type, and every kind converts
// to and from string lexically:
//
//	config.StringAtom("42").AsInt()   // 42, nil
//	config.StringAtom("x").AsInt()    // 0, *CoercionError
//	config.IntAtom(1).AsBool()        // true, nil
//
// # Immutability
//
// Trees are built once during parsing and are read-only afterwards, so a
// fully built tree may be shared by concurrent readers without locking.
// Reloading a configuration means parsing it again from source.
package config
