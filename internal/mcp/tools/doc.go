// Package tools implements the MCP tools exposing the obfuscation engine:
// pyobf_index, pyobf_plan_rename, and pyobf_transform wrap the Project
// Indexer, Rename Mapper, and Orchestrator respectively.
package tools
