// Package store implements an in-memory configuration store of named
// sections holding string key/value pairs, loaded from and persisted to
// INI-style files.
//
// # Usage
//
//	s := store.New(chat, console, "/etc/confstore/store.conf")
//	s.SetValue("SERVER_TOPICS", "Receiver", "/rcvsrv")
//	topic := s.GetValue("SERVER_TOPICS", "Receiver", "none")
//	if !s.Persist("/etc/confstore/store.conf") {
//	    // destination state is unspecified
//	}
//
// # Output Channels
//
// A Store never returns configuration problems to its caller. It reports
// them through the console Channel and carries on with whatever state it
// has. Informational output (PrintAll, PrintSection) goes through the
// chat Channel. Persist is the only operation that signals failure, with
// its boolean result.
//
// # Default Section
//
// Keys of the DEFAULT section are visible from every other section for
// GetValue, HasKey, GetSectionSnapshot and printing. DEFAULT is not listed
// by Sections, and a non-merge Load does not clear it. Use Reset to erase
// it.
//
// A Store is not safe for concurrent use. Callers that share one must
// serialize access themselves.
package store
