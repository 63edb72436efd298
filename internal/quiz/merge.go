package quiz

// Merge 合并本地缓存快照与服务端快照，双方的历史都不丢失。
// 逐字段合并：currentLevel 取 max，解锁/完成集合取并集，
// 单关星级与最好成绩取 max，attempts 相加。合并满足交换律；
// 集合字段幂等，attempts 在重复合并同一快照时会重复计数，
// 这是同步协议的已知限制，由测试显式固定。
func Merge(local, remote ProgressState) ProgressState {
	out := NewProgressState()

	out.CurrentLevel = local.CurrentLevel
	if remote.CurrentLevel > out.CurrentLevel {
		out.CurrentLevel = remote.CurrentLevel
	}
	if out.CurrentLevel < 1 {
		out.CurrentLevel = 1
	}

	for _, l := range local.UnlockedLevels {
		out.UnlockedLevels = addLevel(out.UnlockedLevels, l)
	}
	for _, l := range remote.UnlockedLevels {
		out.UnlockedLevels = addLevel(out.UnlockedLevels, l)
	}
	out.UnlockedLevels = addLevel(out.UnlockedLevels, 1)

	for _, l := range local.CompletedLevels {
		out.CompletedLevels = addLevel(out.CompletedLevels, l)
	}
	for _, l := range remote.CompletedLevels {
		out.CompletedLevels = addLevel(out.CompletedLevels, l)
	}

	for level, st := range local.LevelProgress {
		out.LevelProgress[level] = st
	}
	for level, st := range remote.LevelProgress {
		merged, ok := out.LevelProgress[level]
		if !ok {
			out.LevelProgress[level] = st
			continue
		}
		if st.Stars > merged.Stars {
			merged.Stars = st.Stars
		}
		if st.BestScore > merged.BestScore {
			merged.BestScore = st.BestScore
		}
		merged.Attempts += st.Attempts
		out.LevelProgress[level] = merged
	}

	// totalStars 永远重算，不继承任何一方
	out.TotalStars = sumStars(out.LevelProgress)
	return out
}
