// Package schema validates raw request input against declared schemas.
//
// A Schema is a plain data structure (field name, type, constraints) rather
// than reflection over Go types, so the same descriptor can drive validation
// and documentation. Validation is all-or-nothing: either every field
// satisfies its rules and a Validated value is returned, or every failing
// field is reported and nothing is.
//
// # Closed Schemas
//
// Fields not declared in the schema are rejected with an "unknown field"
// error. Stripping was considered and ruled out: silently dropping a
// misspelled field hides client bugs behind a 200.
//
// # Usage
//
//	var registerSchema = schema.Schema{
//	    Name: "register_member",
//	    Fields: []schema.Field{
//	        {Name: "email", Type: schema.TypeString, Required: true, Format: schema.FormatEmail},
//	        {Name: "age", Type: schema.TypeNumber, Required: true, Min: schema.Float(13)},
//	    },
//	}
//
//	in, fieldErrs := registerSchema.Validate(raw)
//	if fieldErrs != nil {
//	    // every failing field is in fieldErrs
//	}
//	email := in.String("email")
package schema
