package service

import (
	"fmt"
	"strings"

	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/types"
)

// Prompt templates are fixed apart from their interpolated parameters, so the
// rendered prompt is a pure function of its inputs. The response language and
// the output contracts are pinned inside the templates themselves.

const extractionTemplate = `아래는 OCR로 인식된 텍스트입니다. 상품명이 정확하지 않을 수 있으므로, 유사 발음과 일반적인 쇼핑 품목명을 기준으로 보정한 후, 상품명과 수량을 추출하고 각 상품을 아래의 음식 카테고리 중 하나로 분류해 주세요.

✅ 출력 형식은 다음과 같아야 합니다:
[["상품명", 수량, "카테고리", "%s"], ...]

❗ 반드시 지켜야 할 조건:
- 수량이 명시되지 않으면 1로 간주하세요.
- 단위(개, 팩 등)는 생략하고 숫자만 포함하세요.
- 상품명이 너무 불분명하거나 카테고리 분류가 어렵다면 제외하세요.
- 설명 등 다른 텍스트는 절대 포함하지 마세요.

📦 카테고리 목록:
- %s

텍스트:
%s`

const recommendationTemplate = `다음은 사용자가 현재 가지고 있는 재료 목록입니다: %s

이 재료 중 일부 또는 전부를 활용하여 만들 수 있는 요리법을 %d개 추천해 주세요. 각 레시피는 다음 조건을 따라 주세요:

- 레시피 이름
- 필요한 재료 목록
- 명확하고 구체적인 조리 방법
- 사용자 보유 재료를 최대한 활용한 요리

✅ 출력 형식은 반드시 아래의 JSON 배열 구조를 따르세요 (설명 없이 JSON만 반환):

[
  {
    "name": "요리 이름",
    "ingredients": ["재료1", "재료2", ...],
    "instructions": "조리 방법은 명확하고 구체적으로 작성"
  },
  ...
]

답변은 반드시 한국어로 작성해 주세요.`

// BuildExtractionPrompt renders the extraction/classification instruction for
// the given OCR text blob. observedAt is computed once per request by the
// caller and interpolated as a literal, so every row the model emits carries
// the same request-time stamp.
func BuildExtractionPrompt(text, observedAt string) string {
	names := make([]string, 0, len(types.Categories))
	for _, c := range types.Categories {
		names = append(names, string(c))
	}
	return fmt.Sprintf(extractionTemplate, observedAt, strings.Join(names, ", "), text)
}

// BuildRecommendationPrompt renders the recipe-recommendation instruction for
// the pantry list, asking for count recipes.
func BuildRecommendationPrompt(ingredients []types.IngredientRef, count int) string {
	pairs := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		pairs = append(pairs, fmt.Sprintf("%s %v", ing.Name, ing.Quantity))
	}
	return fmt.Sprintf(recommendationTemplate, strings.Join(pairs, ", "), count)
}
