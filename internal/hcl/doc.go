// Package hcl provides the HCL implementation of config.Loader together with
// a writer that renders experiments back into the same HCL format.
//
// A file may declare any number of experiments:
//
//	experiment "eviction" {
//	  definition {
//	    part = "twitternew-text"
//	    db {
//	      type        = "postgres"
//	      writearound = true
//	    }
//	    eviction "backend" {
//	      lo = 20
//	      hi = 25
//	    }
//	  }
//	}
//
// Every attribute and block is checked against the schema, so a misspelled
// key is reported instead of being ignored.
package hcl
