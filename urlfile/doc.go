// Package urlfile reads and writes the file formats used around the URL
// toolkit: case files listing URLs with their expected components (consumed
// by golden tests and batch validation), plain URL lists, and validation
// report files.
//
// Case files may be JSON or YAML, selected by file extension:
//
//	[
//	  {
//	    "url": "https://example.com:8080/path?query#fragment",
//	    "expected": {
//	      "scheme": "https",
//	      "host": "example.com",
//	      "port": 8080,
//	      "path": "/path",
//	      "query": "query",
//	      "fragment": "fragment"
//	    }
//	  },
//	  {"url": "not a url"}
//	]
//
// A case without an "expected" object states that the URL must be rejected.
//
// Report files are always JSON and are written atomically so a crashed or
// concurrent run never leaves a partially written report behind.
package urlfile
