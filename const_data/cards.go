package const_data

import "go-splendor/entities"

func cost(w, u, g, r, k int) map[entities.TokenType]int {
	c := map[entities.TokenType]int{}
	for i, n := range []int{w, u, g, r, k} {
		if n > 0 {
			c[entities.StandardTokenTypes[i]] = n
		}
	}
	return c
}

// SplendorCards 按等级分组的发展卡，下标 0/1/2 对应 1/2/3 级
var SplendorCards = [3][]entities.NormalCard{
	{
		{ID: 1, Level: 1, Bonus: entities.TokenBlack, Points: 0, Cost: cost(1, 1, 1, 1, 0)},
		{ID: 2, Level: 1, Bonus: entities.TokenBlack, Points: 0, Cost: cost(1, 2, 1, 1, 0)},
		{ID: 3, Level: 1, Bonus: entities.TokenBlack, Points: 0, Cost: cost(2, 2, 0, 1, 0)},
		{ID: 4, Level: 1, Bonus: entities.TokenBlack, Points: 0, Cost: cost(0, 0, 1, 3, 1)},
		{ID: 5, Level: 1, Bonus: entities.TokenBlack, Points: 0, Cost: cost(0, 0, 2, 1, 0)},
		{ID: 6, Level: 1, Bonus: entities.TokenBlack, Points: 0, Cost: cost(2, 0, 2, 0, 0)},
		{ID: 7, Level: 1, Bonus: entities.TokenBlack, Points: 0, Cost: cost(0, 0, 3, 0, 0)},
		{ID: 8, Level: 1, Bonus: entities.TokenBlack, Points: 1, Cost: cost(0, 4, 0, 0, 0)},
		{ID: 9, Level: 1, Bonus: entities.TokenBlue, Points: 0, Cost: cost(1, 0, 1, 1, 1)},
		{ID: 10, Level: 1, Bonus: entities.TokenBlue, Points: 0, Cost: cost(1, 0, 1, 2, 1)},
		{ID: 11, Level: 1, Bonus: entities.TokenBlue, Points: 0, Cost: cost(1, 0, 2, 2, 0)},
		{ID: 12, Level: 1, Bonus: entities.TokenBlue, Points: 0, Cost: cost(0, 1, 3, 1, 0)},
		{ID: 13, Level: 1, Bonus: entities.TokenBlue, Points: 0, Cost: cost(1, 0, 0, 0, 2)},
		{ID: 14, Level: 1, Bonus: entities.TokenBlue, Points: 0, Cost: cost(0, 0, 2, 0, 2)},
		{ID: 15, Level: 1, Bonus: entities.TokenBlue, Points: 0, Cost: cost(0, 0, 0, 0, 3)},
		{ID: 16, Level: 1, Bonus: entities.TokenBlue, Points: 1, Cost: cost(0, 0, 0, 4, 0)},
		{ID: 17, Level: 1, Bonus: entities.TokenWhite, Points: 0, Cost: cost(0, 1, 1, 1, 1)},
		{ID: 18, Level: 1, Bonus: entities.TokenWhite, Points: 0, Cost: cost(0, 1, 2, 1, 1)},
		{ID: 19, Level: 1, Bonus: entities.TokenWhite, Points: 0, Cost: cost(0, 2, 2, 0, 1)},
		{ID: 20, Level: 1, Bonus: entities.TokenWhite, Points: 0, Cost: cost(3, 1, 0, 0, 1)},
		{ID: 21, Level: 1, Bonus: entities.TokenWhite, Points: 0, Cost: cost(0, 0, 0, 2, 1)},
		{ID: 22, Level: 1, Bonus: entities.TokenWhite, Points: 0, Cost: cost(0, 2, 0, 0, 2)},
		{ID: 23, Level: 1, Bonus: entities.TokenWhite, Points: 0, Cost: cost(0, 3, 0, 0, 0)},
		{ID: 24, Level: 1, Bonus: entities.TokenWhite, Points: 1, Cost: cost(0, 0, 4, 0, 0)},
		{ID: 25, Level: 1, Bonus: entities.TokenGreen, Points: 0, Cost: cost(1, 1, 0, 1, 1)},
		{ID: 26, Level: 1, Bonus: entities.TokenGreen, Points: 0, Cost: cost(1, 1, 0, 1, 2)},
		{ID: 27, Level: 1, Bonus: entities.TokenGreen, Points: 0, Cost: cost(0, 1, 0, 2, 2)},
		{ID: 28, Level: 1, Bonus: entities.TokenGreen, Points: 0, Cost: cost(1, 3, 1, 0, 0)},
		{ID: 29, Level: 1, Bonus: entities.TokenGreen, Points: 0, Cost: cost(2, 1, 0, 0, 0)},
		{ID: 30, Level: 1, Bonus: entities.TokenGreen, Points: 0, Cost: cost(0, 2, 0, 2, 0)},
		{ID: 31, Level: 1, Bonus: entities.TokenGreen, Points: 0, Cost: cost(0, 0, 0, 3, 0)},
		{ID: 32, Level: 1, Bonus: entities.TokenGreen, Points: 1, Cost: cost(0, 0, 0, 0, 4)},
		{ID: 33, Level: 1, Bonus: entities.TokenRed, Points: 0, Cost: cost(1, 1, 1, 0, 1)},
		{ID: 34, Level: 1, Bonus: entities.TokenRed, Points: 0, Cost: cost(2, 1, 1, 0, 1)},
		{ID: 35, Level: 1, Bonus: entities.TokenRed, Points: 0, Cost: cost(2, 0, 1, 0, 2)},
		{ID: 36, Level: 1, Bonus: entities.TokenRed, Points: 0, Cost: cost(1, 0, 0, 1, 3)},
		{ID: 37, Level: 1, Bonus: entities.TokenRed, Points: 0, Cost: cost(0, 2, 1, 0, 0)},
		{ID: 38, Level: 1, Bonus: entities.TokenRed, Points: 0, Cost: cost(2, 0, 0, 2, 0)},
		{ID: 39, Level: 1, Bonus: entities.TokenRed, Points: 0, Cost: cost(3, 0, 0, 0, 0)},
		{ID: 40, Level: 1, Bonus: entities.TokenRed, Points: 1, Cost: cost(4, 0, 0, 0, 0)},
	},
	{
		{ID: 41, Level: 2, Bonus: entities.TokenBlack, Points: 1, Cost: cost(3, 2, 2, 0, 0)},
		{ID: 42, Level: 2, Bonus: entities.TokenBlack, Points: 1, Cost: cost(3, 0, 3, 0, 2)},
		{ID: 43, Level: 2, Bonus: entities.TokenBlack, Points: 2, Cost: cost(0, 1, 4, 2, 0)},
		{ID: 44, Level: 2, Bonus: entities.TokenBlack, Points: 2, Cost: cost(0, 0, 5, 3, 0)},
		{ID: 45, Level: 2, Bonus: entities.TokenBlack, Points: 2, Cost: cost(5, 0, 0, 0, 0)},
		{ID: 46, Level: 2, Bonus: entities.TokenBlack, Points: 3, Cost: cost(0, 0, 0, 0, 6)},
		{ID: 47, Level: 2, Bonus: entities.TokenBlue, Points: 1, Cost: cost(0, 2, 2, 3, 0)},
		{ID: 48, Level: 2, Bonus: entities.TokenBlue, Points: 1, Cost: cost(0, 2, 3, 0, 3)},
		{ID: 49, Level: 2, Bonus: entities.TokenBlue, Points: 2, Cost: cost(5, 3, 0, 0, 0)},
		{ID: 50, Level: 2, Bonus: entities.TokenBlue, Points: 2, Cost: cost(2, 0, 0, 1, 4)},
		{ID: 51, Level: 2, Bonus: entities.TokenBlue, Points: 2, Cost: cost(0, 5, 0, 0, 0)},
		{ID: 52, Level: 2, Bonus: entities.TokenBlue, Points: 3, Cost: cost(0, 6, 0, 0, 0)},
		{ID: 53, Level: 2, Bonus: entities.TokenWhite, Points: 1, Cost: cost(0, 0, 3, 2, 2)},
		{ID: 54, Level: 2, Bonus: entities.TokenWhite, Points: 1, Cost: cost(2, 3, 0, 3, 0)},
		{ID: 55, Level: 2, Bonus: entities.TokenWhite, Points: 2, Cost: cost(0, 0, 1, 4, 2)},
		{ID: 56, Level: 2, Bonus: entities.TokenWhite, Points: 2, Cost: cost(0, 0, 0, 5, 3)},
		{ID: 57, Level: 2, Bonus: entities.TokenWhite, Points: 2, Cost: cost(0, 0, 0, 5, 0)},
		{ID: 58, Level: 2, Bonus: entities.TokenWhite, Points: 3, Cost: cost(6, 0, 0, 0, 0)},
		{ID: 59, Level: 2, Bonus: entities.TokenGreen, Points: 1, Cost: cost(2, 3, 0, 0, 2)},
		{ID: 60, Level: 2, Bonus: entities.TokenGreen, Points: 1, Cost: cost(3, 0, 2, 3, 0)},
		{ID: 61, Level: 2, Bonus: entities.TokenGreen, Points: 2, Cost: cost(4, 2, 0, 0, 1)},
		{ID: 62, Level: 2, Bonus: entities.TokenGreen, Points: 2, Cost: cost(0, 5, 3, 0, 0)},
		{ID: 63, Level: 2, Bonus: entities.TokenGreen, Points: 2, Cost: cost(0, 0, 5, 0, 0)},
		{ID: 64, Level: 2, Bonus: entities.TokenGreen, Points: 3, Cost: cost(0, 0, 6, 0, 0)},
		{ID: 65, Level: 2, Bonus: entities.TokenRed, Points: 1, Cost: cost(2, 0, 0, 2, 3)},
		{ID: 66, Level: 2, Bonus: entities.TokenRed, Points: 1, Cost: cost(0, 3, 0, 2, 3)},
		{ID: 67, Level: 2, Bonus: entities.TokenRed, Points: 2, Cost: cost(1, 4, 2, 0, 0)},
		{ID: 68, Level: 2, Bonus: entities.TokenRed, Points: 2, Cost: cost(3, 0, 0, 0, 5)},
		{ID: 69, Level: 2, Bonus: entities.TokenRed, Points: 2, Cost: cost(0, 0, 0, 0, 5)},
		{ID: 70, Level: 2, Bonus: entities.TokenRed, Points: 3, Cost: cost(0, 0, 0, 6, 0)},
	},
	{
		{ID: 71, Level: 3, Bonus: entities.TokenBlack, Points: 3, Cost: cost(3, 3, 5, 3, 0)},
		{ID: 72, Level: 3, Bonus: entities.TokenBlack, Points: 4, Cost: cost(0, 0, 0, 7, 0)},
		{ID: 73, Level: 3, Bonus: entities.TokenBlack, Points: 4, Cost: cost(0, 0, 3, 6, 3)},
		{ID: 74, Level: 3, Bonus: entities.TokenBlack, Points: 5, Cost: cost(0, 0, 0, 7, 3)},
		{ID: 75, Level: 3, Bonus: entities.TokenBlue, Points: 3, Cost: cost(3, 0, 3, 3, 5)},
		{ID: 76, Level: 3, Bonus: entities.TokenBlue, Points: 4, Cost: cost(7, 0, 0, 0, 0)},
		{ID: 77, Level: 3, Bonus: entities.TokenBlue, Points: 4, Cost: cost(6, 3, 0, 0, 3)},
		{ID: 78, Level: 3, Bonus: entities.TokenBlue, Points: 5, Cost: cost(7, 3, 0, 0, 0)},
		{ID: 79, Level: 3, Bonus: entities.TokenWhite, Points: 3, Cost: cost(0, 3, 3, 5, 3)},
		{ID: 80, Level: 3, Bonus: entities.TokenWhite, Points: 4, Cost: cost(0, 0, 0, 0, 7)},
		{ID: 81, Level: 3, Bonus: entities.TokenWhite, Points: 4, Cost: cost(3, 0, 0, 3, 6)},
		{ID: 82, Level: 3, Bonus: entities.TokenWhite, Points: 5, Cost: cost(3, 0, 0, 0, 7)},
		{ID: 83, Level: 3, Bonus: entities.TokenGreen, Points: 3, Cost: cost(5, 3, 0, 3, 3)},
		{ID: 84, Level: 3, Bonus: entities.TokenGreen, Points: 4, Cost: cost(0, 7, 0, 0, 0)},
		{ID: 85, Level: 3, Bonus: entities.TokenGreen, Points: 4, Cost: cost(3, 6, 3, 0, 0)},
		{ID: 86, Level: 3, Bonus: entities.TokenGreen, Points: 5, Cost: cost(0, 7, 3, 0, 0)},
		{ID: 87, Level: 3, Bonus: entities.TokenRed, Points: 3, Cost: cost(3, 5, 3, 0, 3)},
		{ID: 88, Level: 3, Bonus: entities.TokenRed, Points: 4, Cost: cost(0, 0, 7, 0, 0)},
		{ID: 89, Level: 3, Bonus: entities.TokenRed, Points: 4, Cost: cost(0, 3, 6, 3, 0)},
		{ID: 90, Level: 3, Bonus: entities.TokenRed, Points: 5, Cost: cost(0, 0, 7, 3, 0)},
	},
}

// NobleTilesList 全部贵族，每局按人数 +1 抽取
var NobleTilesList = []entities.NobleCard{
	{ID: "N1", Requirement: cost(0, 0, 4, 4, 0), Points: entities.NoblePoints},
	{ID: "N2", Requirement: cost(0, 0, 0, 4, 4), Points: entities.NoblePoints},
	{ID: "N3", Requirement: cost(0, 4, 4, 0, 0), Points: entities.NoblePoints},
	{ID: "N4", Requirement: cost(4, 0, 0, 0, 4), Points: entities.NoblePoints},
	{ID: "N5", Requirement: cost(4, 4, 0, 0, 0), Points: entities.NoblePoints},
	{ID: "N6", Requirement: cost(3, 0, 0, 3, 3), Points: entities.NoblePoints},
	{ID: "N7", Requirement: cost(3, 3, 3, 0, 0), Points: entities.NoblePoints},
	{ID: "N8", Requirement: cost(0, 0, 3, 3, 3), Points: entities.NoblePoints},
	{ID: "N9", Requirement: cost(0, 3, 3, 3, 0), Points: entities.NoblePoints},
	{ID: "N10", Requirement: cost(3, 3, 0, 0, 3), Points: entities.NoblePoints},
}
