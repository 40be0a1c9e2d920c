// Package hclcfg loads the optional HCL overlay file, an alternative to
// environment variables for declaring scrape targets and options.
//
// An overlay is one .hcl file or a directory of them:
//
//	options {
//	  scrape_interval = "30s"                      # bare keys land under global.*
//	}
//
//	options = {
//	  "global.scrape_timeout" = "5s"               # quoted keys may be dotted paths
//	  rule_files              = "/etc/extra/*.rules"
//	}
//
//	target "front-end" {
//	  addresses = ["fe1:9090", "fe2:9090"]
//	  options = {
//	    scheme        = "https"
//	    "labels.team" = "web"
//	  }
//	}
//
// The block and map spellings of options are interchangeable, at the top
// level and inside a target alike; only the map form can carry dotted keys,
// because block attribute names must be plain identifiers.
//
// Values pass through the same string coercion as environment input, so the
// overlay introduces no second typing scheme: a value quoted inside its HCL
// quotes still forces string typing the same way it does in a variable.
package hclcfg
