package scripting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/skyshot/armory/internal/projectile"
)

var eventNames = map[projectile.Event]string{
	projectile.EventStarted: "start",
	projectile.EventHit:     "hit",
	projectile.EventBurnout: "burnout",
}

// Modifier runs a Lua function for one projectile. The function receives a
// context table and may return a table of changes:
//
//	velocity = {x=, y=, z=}, damage = n, kick = n, range = n, lifetime = n
//
// ctx.state persists between calls. A script error is logged once and the
// modifier goes inert, leaving the flight unmodified.
type Modifier struct {
	engine   *Engine
	function string
	params   *lua.LTable
	state    *lua.LTable
	failed   bool
}

// Modifier creates a scripted projectile modifier calling function.
func (e *Engine) Modifier(function string, params map[string]float64) projectile.Modifier {
	pt := e.vm.NewTable()
	for k, v := range params {
		pt.RawSetString(k, lua.LNumber(v))
	}
	m := &Modifier{engine: e, function: function, params: pt, state: e.vm.NewTable()}
	if !e.Has(function) {
		e.log.Error("lua modifier function not found, disabled", zap.String("function", function))
		m.failed = true
	}
	return m
}

// Failed reports whether the modifier has gone inert.
func (m *Modifier) Failed() bool { return m.failed }

func (m *Modifier) OnTick(p *projectile.Projectile, dt float64) {
	m.run(p, "tick", dt)
}

func (m *Modifier) OnEvent(p *projectile.Projectile, ev projectile.Event) {
	m.run(p, eventNames[ev], 0)
}

func (m *Modifier) run(p *projectile.Projectile, event string, dt float64) {
	if m.failed {
		return
	}
	result, err := m.engine.call(m.function, m.context(p, event, dt))
	if err == nil {
		err = apply(p, result)
	}
	if err != nil {
		m.failed = true
		m.engine.log.Error("lua modifier error, disabled",
			zap.String("function", m.function),
			zap.String("event", event),
			zap.Error(err),
		)
	}
}

func (m *Modifier) context(p *projectile.Projectile, event string, dt float64) *lua.LTable {
	vm := m.engine.vm
	t := vm.NewTable()
	t.RawSetString("event", lua.LString(event))
	t.RawSetString("dt", lua.LNumber(dt))
	t.RawSetString("source", lua.LString(p.Source))
	t.RawSetString("position", vecTable(vm, p.Pos))
	t.RawSetString("velocity", vecTable(vm, p.Velocity))
	t.RawSetString("speed", lua.LNumber(p.CurrentSpeed))
	t.RawSetString("time_alive", lua.LNumber(p.TimeAlive))
	t.RawSetString("travel", lua.LNumber(p.TotalTravel))
	t.RawSetString("damage", lua.LNumber(p.HitDamage))
	t.RawSetString("kick", lua.LNumber(p.HitKick))
	t.RawSetString("range", lua.LNumber(p.MaxDistance))
	t.RawSetString("lifetime", lua.LNumber(p.Lifetime))
	t.RawSetString("time_interpolant", lua.LNumber(p.TimeInterpolant()))
	t.RawSetString("range_interpolant", lua.LNumber(p.RangeInterpolant()))
	t.RawSetString("params", m.params)
	t.RawSetString("state", m.state)
	return t
}

// apply copies returned changes onto p. nil means no change.
func apply(p *projectile.Projectile, result lua.LValue) error {
	if result == lua.LNil {
		return nil
	}
	rt, ok := result.(*lua.LTable)
	if !ok {
		return fmt.Errorf("returned %s, want table or nil", result.Type())
	}
	if v, ok := rt.RawGetString("velocity").(*lua.LTable); ok {
		p.Velocity = tableVec(v, p.Velocity)
	}
	setNumber(rt, "damage", &p.HitDamage)
	setNumber(rt, "kick", &p.HitKick)
	setNumber(rt, "range", &p.MaxDistance)
	setNumber(rt, "lifetime", &p.Lifetime)
	return nil
}

func setNumber(t *lua.LTable, key string, dst *float64) {
	if n, ok := t.RawGetString(key).(lua.LNumber); ok {
		*dst = float64(n)
	}
}

func vecTable(vm *lua.LState, v mgl64.Vec3) *lua.LTable {
	t := vm.NewTable()
	t.RawSetString("x", lua.LNumber(v[0]))
	t.RawSetString("y", lua.LNumber(v[1]))
	t.RawSetString("z", lua.LNumber(v[2]))
	return t
}

// tableVec reads x/y/z, keeping the fallback component for any that are
// missing.
func tableVec(t *lua.LTable, fallback mgl64.Vec3) mgl64.Vec3 {
	out := fallback
	for i, k := range []string{"x", "y", "z"} {
		if n, ok := t.RawGetString(k).(lua.LNumber); ok {
			out[i] = float64(n)
		}
	}
	return out
}
