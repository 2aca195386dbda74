package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/game"
	"github.com/decker502/shooter/pkg/world"
)

// 资源清单中的图片ID
const (
	ImageBackground = "IMAGE_BACKGROUND"
	ImageSpaceship  = "IMAGE_SPACESHIP"
	ImageAlienship  = "IMAGE_ALIENSHIP"
	ImageShot       = "IMAGE_SHOT"
	ImageAlienShot  = "IMAGE_ALIENSHOT"
)

// ResourceGroupGame 游戏场景使用的资源组
const ResourceGroupGame = "game"

// spriteGrids 资源清单中声明的精灵图帧网格
type spriteGrids interface {
	SpriteGrid(resourceID string) (cols, rows int, ok bool)
}

// spriteMapIDs 按动画帧网格切分的精灵图
var spriteMapIDs = []string{ImageSpaceship, ImageAlienship, ImageShot, ImageAlienShot}

// checkSpriteGrids 清单声明的帧网格必须与动画配置一致，未声明的按配置切分
func checkSpriteGrids(grids spriteGrids, cfg *config.GameConfig) error {
	for _, id := range spriteMapIDs {
		cols, rows, ok := grids.SpriteGrid(id)
		if !ok {
			continue
		}
		if cols != cfg.Animation.FrameCols || rows != cfg.Animation.FrameRows {
			return fmt.Errorf("sprite map %s is %dx%d, animation config expects %dx%d",
				id, cols, rows, cfg.Animation.FrameCols, cfg.Animation.FrameRows)
		}
	}
	return nil
}

// loadWorldAssets 按ID加载一局游戏需要的全部纹理
//
// 背景缺失不影响游戏，其余纹理缺失或帧网格不符返回错误。
func loadWorldAssets(rm *game.ResourceManager, cfg *config.GameConfig) (world.Assets, error) {
	var assets world.Assets

	if err := checkSpriteGrids(rm, cfg); err != nil {
		return assets, err
	}

	ship, err := rm.LoadTextureByID(ImageSpaceship)
	if err != nil {
		return assets, fmt.Errorf("failed to load player ship: %w", err)
	}
	alien, err := rm.LoadTextureByID(ImageAlienship)
	if err != nil {
		return assets, fmt.Errorf("failed to load alien ship: %w", err)
	}
	shot, err := rm.LoadTextureByID(ImageShot)
	if err != nil {
		return assets, fmt.Errorf("failed to load player shot: %w", err)
	}
	alienShot, err := rm.LoadTextureByID(ImageAlienShot)
	if err != nil {
		return assets, fmt.Errorf("failed to load alien shot: %w", err)
	}

	assets.Ship = ship
	assets.Alien = alien
	assets.Shot = shot
	assets.AlienShot = alienShot

	background, err := rm.LoadTextureByID(ImageBackground)
	if err != nil {
		log.Printf("[GameScene] Warning: no background: %v", err)
	} else {
		assets.Background = background
	}

	return assets, nil
}
