// Package snapshot loads a compilation model snapshot from YAML.
//
// A snapshot lists classes and the annotated fields they declare, with the
// attribute arguments already reduced to string and bool constants:
//
//	version: "1"
//	classes:
//	  - namespace: Shop
//	    name: Cart
//	    sealed: true
//	    fields:
//	      - name: _total
//	        type: decimal
//	        location: {file: Cart.cs, line: 9, column: 24}
//	        attributes:
//	          GenerateEventArgs: true
//	          PropertySummary: Total price of the cart.
package snapshot
