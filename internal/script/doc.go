// Package script binds Lua functions to chart options.
//
// A script runs in a sandboxed gopher-lua State and talks to its chart
// through a global "chart" table:
//
//	chart.callback("elements.point.radius", function(ctx)
//	  if ctx.raw and ctx.raw > 10 then return 6 end
//	  return 3
//	end)
//	chart.set("plugins.title.text", "Revenue")
//	chart.on("click", function(ev) print(ev.type, ev.x, ev.y) end)
//
// Each Lua callback is stored in the catalog slot for its path, so it goes
// through the same coercion as a Go callback: an error raised by the script,
// a timeout or a result of the wrong shape yields the resolved default.
//
// A State is not safe for concurrent use by itself; every call goes through
// its mutex, and callbacks run with a per-call deadline.
package script
