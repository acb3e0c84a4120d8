// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package session brings up the XR runtime connection and tracks the
// session lifecycle.
//
// [Connect] performs the mandatory startup sequence: create the instance,
// resolve the head-mounted system, and query the graphics API version range
// the system accepts. The returned [Instance] lives for the life of the
// runtime connection.
//
// A [StateMachine] owns one session. It is purely reactive: [StateMachine.PollEvents]
// drains the runtime's event queue, begins the session on READY, ends it on
// STOPPING, and reports whether the caller should leave the frame loop and
// whether it should reconnect.
//
//	inst, err := session.Connect(rt, session.Config{AppName: "demo"})
//	if err != nil {
//	    return err
//	}
//	defer inst.Close()
//
//	sm := session.NewStateMachine(inst)
//	if _, err := sm.CreateSession(binding); err != nil {
//	    return err
//	}
//	defer sm.Destroy()
//
//	for {
//	    res := sm.PollEvents()
//	    if res.ExitLoop {
//	        break
//	    }
//	    if sm.IsRunning() {
//	        // render a frame
//	    }
//	}
package session
