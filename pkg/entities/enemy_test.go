package entities

import (
	"math/rand"
	"testing"
)

func TestNewEnemySpawnsAlive(t *testing.T) {
	cfg := newTestConfig()
	enemy := NewEnemy(alienTexture, &mockShotFirer{}, cfg, newTestRand())

	if enemy.IsDead() {
		t.Fatal("new enemy should be alive")
	}
	if enemy.SpawnCount() != 1 {
		t.Errorf("SpawnCount = %d, want 1", enemy.SpawnCount())
	}

	sprite := enemy.Sprite()
	if sprite.Y() != 480-120 {
		t.Errorf("enemy bottom = %v, want 360", sprite.Y())
	}
	if x := sprite.X(); x < 60 || x > 740 {
		t.Errorf("enemy center x = %v outside [60, 740]", x)
	}
	if vx, vy := sprite.Velocity(); vx != 250 || vy != 0 {
		t.Errorf("enemy velocity = (%v, %v), want (250, 0)", vx, vy)
	}
}

func TestEnemySpawnPositionRange(t *testing.T) {
	cfg := newTestConfig()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		enemy := NewEnemy(alienTexture, &mockShotFirer{}, cfg, rng)
		x := enemy.Sprite().X()
		if x < 60 || x > 740 {
			t.Fatalf("spawn %d: center x = %v outside [60, 740]", i, x)
		}
		if x != float64(int(x)) {
			t.Fatalf("spawn %d: center x = %v should be a whole pixel", i, x)
		}
	}
}

func TestEnemyHitAndRespawn(t *testing.T) {
	tests := []struct {
		name  string
		dt    float64
		ticks int
	}{
		{"60 fps", 1.0 / 60, 120},
		{"30 fps", 1.0 / 30, 60},
		{"20 fps", 0.05, 40},
		{"fifth second", 0.2, 10},
		{"coarse ticks", 0.5, 4},
		{"single tick", 2.0, 1},
		{"uneven ticks", 0.3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig()
			enemy := NewEnemy(alienTexture, &mockShotFirer{}, cfg, newTestRand())

			enemy.Hit()
			if !enemy.IsDead() {
				t.Fatal("enemy should be dead after Hit()")
			}
			if enemy.SpawnTimeout() != 2 {
				t.Fatalf("SpawnTimeout = %v, want 2", enemy.SpawnTimeout())
			}

			for i := 1; i < tt.ticks; i++ {
				enemy.Update(tt.dt)
				if !enemy.IsDead() {
					t.Fatalf("enemy respawned early at tick %d", i)
				}
			}
			enemy.Update(tt.dt)

			if enemy.IsDead() {
				t.Fatalf("enemy should respawn on tick %d, timeout left %v", tt.ticks, enemy.SpawnTimeout())
			}
			if enemy.SpawnCount() != 2 {
				t.Errorf("SpawnCount = %d, want 2", enemy.SpawnCount())
			}
			x := enemy.Sprite().X()
			if x < 60 || x > 740 {
				t.Errorf("respawn center x = %v outside [60, 740]", x)
			}
		})
	}
}

func TestEnemyStaysDeadBeforeTimeout(t *testing.T) {
	enemy := NewEnemy(alienTexture, &mockShotFirer{}, newTestConfig(), newTestRand())
	enemy.Hit()

	enemy.Update(1.0)
	enemy.Update(0.9)

	if !enemy.IsDead() {
		t.Error("enemy should still be dead after 1.9s")
	}
	if enemy.SpawnCount() != 1 {
		t.Errorf("SpawnCount = %d, want 1", enemy.SpawnCount())
	}
}

func TestDeadEnemyDoesNotMoveOrShoot(t *testing.T) {
	cfg := newTestConfig()
	cfg.Enemy.FireChance = 1 // 存活时每帧都会开火
	firer := &mockShotFirer{}
	enemy := NewEnemy(alienTexture, firer, cfg, newTestRand())

	enemy.Hit()
	x := enemy.Sprite().X()
	for i := 0; i < 10; i++ {
		enemy.Update(0.1)
	}

	if len(firer.shots) != 0 {
		t.Errorf("dead enemy fired %d shots", len(firer.shots))
	}
	if enemy.Sprite().X() != x {
		t.Errorf("dead enemy moved from %v to %v", x, enemy.Sprite().X())
	}
}

func TestEnemyDrawSkipsDead(t *testing.T) {
	enemy := NewEnemy(alienTexture, &mockShotFirer{}, newTestConfig(), newTestRand())
	surface := &recordingSurface{}

	enemy.Draw(surface, 0.016)
	if len(surface.calls) != 1 {
		t.Fatalf("alive enemy: expected 1 draw call, got %d", len(surface.calls))
	}

	enemy.Hit()
	enemy.Draw(surface, 0.016)
	if len(surface.calls) != 1 {
		t.Errorf("dead enemy should not be drawn, got %d calls", len(surface.calls))
	}
}

func TestEnemyFiresAtCenter(t *testing.T) {
	cfg := newTestConfig()
	cfg.Enemy.FireChance = 1
	cfg.Enemy.FlipChance = 1 << 30
	firer := &mockShotFirer{}
	enemy := NewEnemy(alienTexture, firer, cfg, newTestRand())
	enemy.Sprite().SetPosition(400, 360)

	enemy.Update(0.1)

	if len(firer.shots) != 1 {
		t.Fatalf("expected 1 shot, got %d", len(firer.shots))
	}
	// 先开火后移动
	if firer.shots[0] != 400 {
		t.Errorf("shot fired at %v, want 400", firer.shots[0])
	}
	if enemy.Sprite().X() != 425 {
		t.Errorf("enemy x after update = %v, want 425", enemy.Sprite().X())
	}
}

func TestEnemyMovesMonotonicallyUntilFlip(t *testing.T) {
	cfg := newTestConfig()
	// 只保留随机转向，每帧最多一次方向变化
	cfg.Enemy.EdgeBounce = false
	enemy := NewEnemy(alienTexture, &mockShotFirer{}, cfg, rand.New(rand.NewSource(1000)))
	enemy.Sprite().SetPosition(400, 360)

	dt := 1.0 / 60
	flips := 0
	for i := 0; i < 1000; i++ {
		before := enemy.Sprite().X()
		vBefore, _ := enemy.Sprite().Velocity()

		enemy.Update(dt)

		after := enemy.Sprite().X()
		vAfter, _ := enemy.Sprite().Velocity()

		if vAfter != vBefore {
			// 本帧发生了转向
			flips++
			continue
		}
		if vAfter > 0 && after <= before {
			t.Fatalf("tick %d: moving right but x went %v -> %v", i, before, after)
		}
		if vAfter < 0 && after >= before {
			t.Fatalf("tick %d: moving left but x went %v -> %v", i, before, after)
		}
	}

	if flips == 0 {
		t.Error("expected at least one direction change in 1000 ticks")
	}
}

func TestEnemyWithoutFlipsMovesOneWay(t *testing.T) {
	cfg := newTestConfig()
	cfg.Enemy.EdgeBounce = false
	cfg.Enemy.FlipChance = 1 << 30
	enemy := NewEnemy(alienTexture, &mockShotFirer{}, cfg, newTestRand())
	enemy.Sprite().SetPosition(400, 360)

	prev := enemy.Sprite().X()
	for i := 0; i < 100; i++ {
		enemy.Update(0.01)
		x := enemy.Sprite().X()
		if x <= prev {
			t.Fatalf("tick %d: x did not increase (%v -> %v)", i, prev, x)
		}
		prev = x
	}
	// 无硬性边界限制：400 + 250*1.0 = 650，继续走会越过屏幕
	for i := 0; i < 200; i++ {
		enemy.Update(0.01)
	}
	if enemy.Sprite().X()+60 <= 800 {
		t.Errorf("enemy should be allowed past the right edge, x = %v", enemy.Sprite().X())
	}
}

func TestEnemyEdgeBounce(t *testing.T) {
	cfg := newTestConfig()
	cfg.Enemy.EdgeBounce = true
	cfg.Enemy.FlipChance = 1 << 30
	enemy := NewEnemy(alienTexture, &mockShotFirer{}, cfg, newTestRand())
	enemy.Sprite().SetPosition(735, 360)

	enemy.Update(0.1) // 735 -> 760，右边缘 820 > 800

	if vx, _ := enemy.Sprite().Velocity(); vx != -250 {
		t.Fatalf("expected bounce to -250, got %v", vx)
	}
	// 越界只持续一帧
	enemy.Update(0.1)
	if x := enemy.Sprite().X(); x != 735 {
		t.Errorf("x after bounce = %v, want 735", x)
	}
}
