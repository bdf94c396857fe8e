// Package jshost binds the adapter to a real browser through syscall/js.
// Window wraps a JavaScript window (or document) so discovery can walk it,
// API wraps the injected host object, and Export publishes a session to
// page scripts as a plain object:
//
//	scorm.configure({version: "2004", debug: false})
//	scorm.init()            // alias of initialize
//	scorm.set("cmi.score.raw", 87)
//	scorm.status("completed")
//	scorm.save()            // alias of commit
//	scorm.quit()            // alias of terminate
//
// Property reads on cross-origin frames throw in the browser; Window turns
// those into "absent" so that discovery simply moves on.
//
// The package only builds for GOOS=js GOARCH=wasm.
package jshost
