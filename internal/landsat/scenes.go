package landsat

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/schollz/progressbar/v3"

	"github.com/forest-guardian/landsat-guardian-poc/internal/cache"
	"github.com/forest-guardian/landsat-guardian-poc/internal/properties"
	"github.com/forest-guardian/landsat-guardian-poc/internal/utils"
)

// SceneRevisitDays is the Landsat 8 acquisition interval over a fixed
// footprint.
const SceneRevisitDays = 16

// downloadWorkers bounds concurrent process-API requests.
const downloadWorkers = 4

// GetScenes returns the local GeoTIFF path of every scene acquired in
// the date range, downloading the ones not yet on disk. Dates whose
// download came back empty or unreadable are remembered across runs so
// they are not retried every time.
func GetScenes(aoi *AOI, startDate, endDate time.Time, intervalDays int) (map[time.Time]string, error) {
	scenes := make(map[time.Time]string)

	notFoundCache := cache.NewFileCache[[]string]("scenes/not_found")
	notFoundKey := notFoundCache.GenerateKey(aoi.Site, aoi.Scene)
	notFound, _ := notFoundCache.Get(notFoundKey)

	sceneDir := filepath.Join(properties.RootPath(), "data", "scenes", fmt.Sprintf("%s_%s", aoi.Site, aoi.Scene))
	if err := os.MkdirAll(sceneDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create scenes directory: %v", err)
	}

	var missing []time.Time
	for currentDate := startDate; !currentDate.After(endDate); currentDate = currentDate.AddDate(0, 0, intervalDays) {
		sceneName := sceneFileName(aoi, currentDate)
		scenePath := filepath.Join(sceneDir, sceneName)

		if contains(notFound, sceneName) {
			continue
		}

		if _, err := os.Stat(scenePath); err == nil {
			scenes[currentDate] = scenePath
			continue
		}

		missing = append(missing, currentDate)
	}

	if len(missing) > 0 {
		var mu sync.Mutex
		errChan := make(chan error, 1)
		var stopProcessing sync.Once

		progressBar := progressbar.Default(int64(len(missing)), "Downloading scenes")
		wp := workerpool.New(downloadWorkers)
		for _, missingDate := range missing {
			currentDate := missingDate // capture range variable
			wp.Submit(func() {
				defer progressBar.Add(1)

				sceneName := sceneFileName(aoi, currentDate)
				scenePath := filepath.Join(sceneDir, sceneName)

				startSceneDate := currentDate
				endSceneDate := currentDate.Add(time.Hour*23 + time.Minute*59 + time.Second*59)
				sceneBytes, err := requestScene(startSceneDate, endSceneDate, aoi)
				if err != nil {
					stopProcessing.Do(func() { errChan <- fmt.Errorf("error requesting scene: %v", err) })
					return
				}

				if len(sceneBytes) == 0 {
					mu.Lock()
					notFound = saveNotFound(notFoundCache, notFoundKey, notFound, sceneName)
					mu.Unlock()
					return
				}

				if err := os.WriteFile(scenePath, sceneBytes, 0644); err != nil {
					stopProcessing.Do(func() { errChan <- fmt.Errorf("failed to write scene file: %v", err) })
					return
				}

				var validationErr error
				utils.ExecuteWithMutex(func() {
					validationErr = validateScene(scenePath)
				})
				if validationErr != nil {
					fmt.Printf("Discarding scene %s: %v\n", sceneName, validationErr)
					mu.Lock()
					notFound = saveNotFound(notFoundCache, notFoundKey, notFound, sceneName)
					mu.Unlock()
					if err := os.Remove(scenePath); err != nil {
						fmt.Printf("failed to delete scene file %s: %v\n", scenePath, err)
					}
					return
				}

				mu.Lock()
				scenes[currentDate] = scenePath
				mu.Unlock()
			})
		}

		// Wait for all tasks
		go func() {
			wp.StopWait()
			close(errChan)
		}()

		if err := <-errChan; err != nil {
			return nil, err
		}
		progressBar.Finish()
	}

	if len(scenes) == 0 {
		return nil, fmt.Errorf("no scenes available for site %s scene %s between %s and %s",
			aoi.Site, aoi.Scene, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	}

	return scenes, nil
}

func sceneFileName(aoi *AOI, date time.Time) string {
	return fmt.Sprintf("%s_%s_%s.tif", aoi.Site, aoi.Scene, date.Format("2006-01-02"))
}

func saveNotFound(notFoundCache *cache.FileCache[[]string], key string, notFound []string, sceneName string) []string {
	notFound = append(notFound, sceneName)
	if err := notFoundCache.Set(key, notFound); err != nil {
		fmt.Printf("failed to save not-found scene list: %v\n", err)
	}
	return notFound
}

func contains(slice []string, item string) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
