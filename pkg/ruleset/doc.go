// Package ruleset loads declarative rule documents into named schemas that
// build and validate validator.Form values.
//
// A document lists schemas, each an ordered list of fields:
//
//	schemas:
//	  - name: signup
//	    fields:
//	      - name: email
//	        required: true
//	        maxLength: 254
//	        pattern: '^[^@\s]+@[^@\s]+$'
//	        messages:
//	          required: Email is required
//
// YAMLParser and JSONParser read this shape; OpenAPIParser derives schemas from
// the object schemas of an OpenAPI 3 document, reading custom messages from the
// x-messages property extension. Definitions are checked when compiled: names
// must be present and unique, lengths non-negative with minLength <= maxLength,
// patterns must compile and message keys must name a known check.
//
// A Registry collects schemas from files or an fs.FS:
//
//	reg := ruleset.NewRegistry()
//	if err := reg.LoadFS(ctx, os.DirFS("rules")); err != nil {
//	    return err
//	}
//	schema, err := reg.Lookup("signup")
//	if err != nil {
//	    return err
//	}
//	if errs := schema.Validate(input); errs != nil {
//	    // errs.Fields(), errs.Get("email")
//	}
package ruleset
