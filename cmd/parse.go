/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFloats reads a comma separated list like "1,0,2.5"
func ParseFloats(s string) (vals []float64, err error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return
	}
	for _, field := range strings.Split(s, ",") {
		var val float64
		if val, err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
			return nil, fmt.Errorf("unable to parse [%s] as a list of numbers: %w", s, err)
		}
		vals = append(vals, val)
	}
	return
}

// ParseMatrix reads rows separated by semicolons, like "0,1;1,0"
func ParseMatrix(s string) (rows [][]float64, err error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return
	}
	for _, row := range strings.Split(s, ";") {
		var vals []float64
		if vals, err = ParseFloats(row); err != nil {
			return nil, err
		}
		rows = append(rows, vals)
	}
	return
}
