// Package testutil provides shared fixtures for karabiner-cli tests.
//
// Key components:
//   - MemoryFS: afero-backed in-memory filesystem seeded from a map
//   - FaultyFS: filesystem.FS wrapper that fails selected reads and writes
//   - MockPrompter: testify mock of prompt.Prompter
//   - RuleTo, HyperSaturated, Document: rule and karabiner.json builders
//
// Usage guidelines:
//   - Prefer MemoryFS over the real filesystem; only config and CLI tests
//     need real files, and they should use t.TempDir with WriteFile
//   - Define documents inline next to the test that reads them
package testutil
