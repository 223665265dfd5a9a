package app

import "shaderbox/render"

// shaderView shows one render session. Closing the session pops the view.
type shaderView struct {
	app  *App
	name string
	sess *render.Session
}

func (v *shaderView) Activate() error {
	if v.sess != nil && v.sess.State() != render.StateClosed {
		return nil
	}
	a := v.app
	sess := render.New(render.Config{
		Sink:     a.sink,
		Registry: a.reg,
		Timer:    a.timers,
		Buttons:  a.input,
		Logger:   a.log,
		PeriodMs: a.cfg.PeriodMs,
		OnClose:  v.closed,
		OnError:  a.frameError,
	})
	if err := sess.Select(v.name); err != nil {
		return err
	}
	a.fb.ClearRGB(0, 0, 0)
	if err := sess.Start(); err != nil {
		return err
	}
	v.sess = sess
	a.active = v
	return nil
}

func (v *shaderView) Deactivate() {
	if v.sess != nil {
		v.sess.Cancel()
	}
}

func (v *shaderView) closed() {
	a := v.app
	if a.active == v {
		a.active = nil
	}
	if a.stack.Top() == v {
		a.stack.Pop()
	}
	if a.cfg.QuitOnClose && v.name == a.cfg.Shader {
		a.quit = true
	}
}
