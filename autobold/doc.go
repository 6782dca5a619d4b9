// Package autobold bolds a line's leading label as soon as the user types the
// colon that ends it.
//
// Typing "Title:" turns the line into "**Title:**". List prefixes stay
// outside the markup ("- **Task:**", "1. **Step:**") and labels that already
// start with a bold marker are left alone.
//
// The package keeps no document state. Per editor instance it remembers only
// the cursor seen after the last key release; every key press compares the
// current cursor against it, so only ordinary forward typing can trigger a
// rewrite. Line text and tokens are re-read from the host on each key press.
//
// Key presses are evaluated before the editor applies the key. The colon is
// therefore detected on the key that follows it, which is also when the
// cursor sits right after the colon.
package autobold
