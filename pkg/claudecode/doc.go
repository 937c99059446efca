// Package claudecode provides a thin Go binding over the Claude Code
// CLI.
//
// Each query spawns one CLI process in --print mode, decodes its
// stream-json stdout line by line, and maps every line to a typed
// message. Query collects the whole conversation after the process
// exits; QueryStream delivers messages as they arrive. Conversation
// behavior is controlled through options.Options, including in-process
// MCP tool servers defined with NewSdkMcpServer.
package claudecode
