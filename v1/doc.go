// Package v1 defines the bundle descriptor: the manifest that describes a
// packaged multi-image application. The following fields make up a
// descriptor:
//
//	actions:          {} # optional
//	credentials:      {} # optional
//	custom:           {} # optional
//	description          # optional
//	images:           {} # optional
//	invocationImages: []
//	keywords:         [] # optional
//	license              # optional
//	maintainers:      [] # optional
//	name
//	parameters:       {} # optional
//	schemaVersion
//	version
//
// A sample descriptor, conventionally stored as bundle.json, looks like
// this:
//
//	{
//	  "credentials": {
//	    "hostkey": {
//	      "env": "HOST_KEY",
//	      "path": "/etc/hostkey.txt"
//	    }
//	  },
//	  "images": {
//	    "my-microservice": {
//	      "digest": "sha256:aaaaaaaaaaaa...",
//	      "image": "example/microservice:1.2.3"
//	    }
//	  },
//	  "invocationImages": [
//	    {
//	      "image": "example/helloworld:0.1.0",
//	      "imageType": "docker"
//	    }
//	  ],
//	  "name": "helloworld",
//	  "parameters": {
//	    "port": {
//	      "defaultValue": 8080,
//	      "destination": {
//	        "env": "PORT"
//	      },
//	      "maximum": 65535,
//	      "minimum": 1024,
//	      "type": "int"
//	    }
//	  },
//	  "schemaVersion": "v1.0.0-WD",
//	  "version": "0.1.2"
//	}
//
// The reference encoding of a descriptor is canonical JSON (sorted keys, no
// insignificant whitespace); FromFile and FromString additionally accept
// ordinary JSON, falling back exactly once when the only canonical-form
// violation is whitespace. Decoding is all-or-nothing: either a fully typed
// *Bundle is returned, or a *ParseError, never both.
package v1
