// Package money concentra a aritmética de valores monetários do sistema.
//
// Todo valor em reais é arredondado para 2 casas imediatamente após cada
// multiplicação ou soma, e toda comparação entre valores é feita sobre os
// valores já arredondados. Isso evita que o drift de ponto flutuante se
// acumule ao longo de recebimentos parciais repetidos.
package money

import "github.com/shopspring/decimal"

var cem = decimal.NewFromInt(100)

// Round2 arredonda um valor para 2 casas decimais (centavos).
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Soma retorna a + b já arredondado para centavos.
func Soma(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Round(2).Float64()
	return f
}

// Sub retorna a - b já arredondado para centavos.
func Sub(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2).Float64()
	return f
}

// ComissaoTotal calcula a comissão integral de um serviço:
// valorBruto * porcentagem / 100, em centavos. A porcentagem é um número
// em [0, 100], não uma fração.
func ComissaoTotal(valorBruto, porcentagem float64) float64 {
	f, _ := decimal.NewFromFloat(valorBruto).
		Mul(decimal.NewFromFloat(porcentagem)).
		Div(cem).
		Round(2).
		Float64()
	return f
}

// Excede informa se a > b após arredondar ambos para centavos.
func Excede(a, b float64) bool {
	return decimal.NewFromFloat(a).Round(2).GreaterThan(decimal.NewFromFloat(b).Round(2))
}

// MaiorOuIgual informa se a >= b após arredondar ambos para centavos.
func MaiorOuIgual(a, b float64) bool {
	return decimal.NewFromFloat(a).Round(2).GreaterThanOrEqual(decimal.NewFromFloat(b).Round(2))
}
